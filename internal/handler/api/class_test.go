//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fitclass-server/internal/handler/api"
	resdto "fitclass-server/internal/handler/dto/response"
	"fitclass-server/internal/handler/httperr"
	"fitclass-server/internal/pkg/errs"
	"fitclass-server/internal/usecase/commands"
	"fitclass-server/internal/usecase/queries"
	"fitclass-server/tests/common/builder"
	"fitclass-server/tests/common/httptest"
	commandsmock "fitclass-server/tests/mock/commands"
	queriesmock "fitclass-server/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClassHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockClassCommands
	mockCompletion *commandsmock.MockCompletionCommands
	mockQueries    *queriesmock.MockClassQueries
	handler        *api.ClassHandler
	userID         uuid.UUID
}

func (s *ClassHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClassCommands(s.mockCtrl)
	s.mockCompletion = commandsmock.NewMockCompletionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClassQueries(s.mockCtrl)
	s.handler = api.NewClassHandler(s.mockCommands, s.mockCompletion, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/classes", authMiddleware, s.handler.CreateClass)
	s.router.GET("/classes", authMiddleware, s.handler.ListActiveClasses)
	s.router.GET("/classes/:id", authMiddleware, s.handler.GetClass)
	s.router.DELETE("/classes/:id", authMiddleware, s.handler.DeleteClass)
	s.router.POST("/classes/:id/bookings", authMiddleware, s.handler.BookClass)
	s.router.DELETE("/classes/:id/bookings", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/classes/:id/waitlist", authMiddleware, s.handler.JoinWaitlist)
	s.router.POST("/classes/:id/finish", authMiddleware, s.handler.FinishClass)
	s.router.GET("/classes/:id/results", authMiddleware, s.handler.ListClassResults)
	s.router.GET("/users/:id/classes", authMiddleware, s.handler.ListClassesByUser)
}

func (s *ClassHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClassHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClassHandlerTestSuite))
}

// ================================================================================
// TestCreateClass
// ================================================================================

func (s *ClassHandlerTestSuite) TestCreateClass() {
	url := "/classes"
	reqBody := builder.NewClassBuilder().BuildCreateRequestDTO()
	returnView := builder.NewClassBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateClass(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Name, body.Name)
		s.True(body.Active)
	})

	s.Run("error: 400 on invalid category", func() {
		bad := reqBody
		bad.Category = "swimming"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on non-positive duration", func() {
		bad := reqBody
		bad.DurationMin = 0
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestBookClass
// ================================================================================

func (s *ClassHandlerTestSuite) TestBookClass() {
	classID := uuid.New()
	url := "/classes/" + classID.String() + "/bookings"
	returnView := builder.NewClassBuilder().BuildView()

	s.Run("success: books without a seat", func() {
		s.mockCommands.EXPECT().BookClass(gomock.Any(), classID, s.userID, gomock.Nil()).
			Return(&commands.BookClassResult{Class: returnView, Outcome: "booked"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BookClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("booked", body.Status)
	})

	s.Run("success: passes the requested seat through", func() {
		seat := 3
		s.mockCommands.EXPECT().BookClass(gomock.Any(), classID, s.userID, gomock.Cond(func(p *int) bool {
			return p != nil && *p == seat
		})).Return(&commands.BookClassResult{Class: returnView, Outcome: "booked"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"seat_number": seat}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: full class reports waitlisted", func() {
		s.mockCommands.EXPECT().BookClass(gomock.Any(), classID, s.userID, gomock.Nil()).
			Return(&commands.BookClassResult{Class: returnView, Outcome: "waitlisted"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.BookClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("waitlisted", body.Status)
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"class not found", errs.ErrClassNotFound, http.StatusNotFound},
			{"already booked", errs.ErrAlreadyBooked, http.StatusConflict},
			{"already waitlisted", errs.ErrAlreadyWaitlisted, http.StatusConflict},
			{"seat taken", errs.ErrSeatTaken, http.StatusConflict},
			{"class inactive", errs.ErrClassInactive, http.StatusConflict},
			{"conflict retries exhausted", errs.ErrConflictRetryExhausted, http.StatusConflict},
			{"seat booking disabled", errs.ErrSeatBookingDisabled, http.StatusUnprocessableEntity},
			{"seat out of range", errs.ErrSeatOutOfRange, http.StatusUnprocessableEntity},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookClass(gomock.Any(), classID, s.userID, gomock.Nil()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: marked errors classify like their sentinel", func() {
		marked := errs.Mark(errs.New("user already holds a slot"), errs.ErrAlreadyBooked)
		s.mockCommands.EXPECT().BookClass(gomock.Any(), classID, s.userID, gomock.Nil()).
			Return(nil, marked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: unclassified errors return the internal error envelope", func() {
		s.mockCommands.EXPECT().BookClass(gomock.Any(), classID, s.userID, gomock.Nil()).
			Return(nil, errs.New("pool exhausted")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusInternalServerError, rec.Code)
		var body httperr.Response
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("Internal server error", body.Error.Message)
	})

	s.Run("error: 400 on malformed class id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/classes/not-a-uuid/bookings", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *ClassHandlerTestSuite) TestCancelBooking() {
	classID := uuid.New()
	url := "/classes/" + classID.String() + "/bookings"
	returnView := builder.NewClassBuilder().BuildView()

	s.Run("success: reports the promoted user", func() {
		promoted := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), classID, s.userID).
			Return(&commands.CancelBookingResult{Class: returnView, PromotedUser: &promoted}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.PromotedUser)
		s.Equal(promoted, *body.PromotedUser)
		s.False(body.FromWaitlist)
	})

	s.Run("success: waitlist removal promotes nobody", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), classID, s.userID).
			Return(&commands.CancelBookingResult{Class: returnView, FromWaitlist: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.FromWaitlist)
		s.Nil(body.PromotedUser)
	})

	s.Run("error: 404 when neither booked nor waitlisted", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), classID, s.userID).
			Return(nil, errs.ErrAttendeeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestFinishClass
// ================================================================================

func (s *ClassHandlerTestSuite) TestFinishClass() {
	classID := uuid.New()
	url := "/classes/" + classID.String() + "/finish"

	s.Run("success: returns the pipeline summary", func() {
		eventIDs := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCompletion.EXPECT().FinishClass(gomock.Any(), classID).
			Return(&commands.FinishClassResult{
				ClassID:     classID,
				Attendees:   2,
				Results:     eventIDs,
				Undelivered: 1,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.FinishClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Attendees)
		s.Equal(eventIDs, body.ResultEventIDs)
		s.Equal(1, body.Undelivered)
	})

	s.Run("error: 404 for unknown class", func() {
		s.mockCompletion.EXPECT().FinishClass(gomock.Any(), classID).
			Return(nil, errs.ErrClassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestQueries
// ================================================================================

func (s *ClassHandlerTestSuite) TestGetClass() {
	returnView := builder.NewClassBuilder().BuildView()
	url := "/classes/" + returnView.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetClass(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetClass(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrClassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ClassHandlerTestSuite) TestListActiveClasses() {
	items := []*queries.ClassListItem{
		builder.NewClassBuilder().BuildListItem(),
		builder.NewClassBuilder().AsSpinningRide().BuildListItem(),
	}
	s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(items, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes", nil, "bearer-token")

	var body []*resdto.ClassListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 2)
	s.Equal(items[0].ID, body[0].ID)
}

func (s *ClassHandlerTestSuite) TestListClassesByUser() {
	userID := uuid.New()
	items := []*queries.ClassListItem{builder.NewClassBuilder().BuildListItem()}
	s.mockQueries.EXPECT().ListByUser(gomock.Any(), userID).Return(items, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/classes", nil, "bearer-token")

	var body []*resdto.ClassListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
}

func (s *ClassHandlerTestSuite) TestListClassResults() {
	classID := uuid.New()
	results := []*queries.ResultView{builder.NewClassBuilder().BuildResultView()}
	s.mockQueries.EXPECT().ListResults(gomock.Any(), classID).Return(results, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/"+classID.String()+"/results", nil, "bearer-token")

	var body []*resdto.ClassResultResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
	s.Equal(results[0].EventID, body[0].EventID)
}

func (s *ClassHandlerTestSuite) TestDeleteClass() {
	classID := uuid.New()
	url := "/classes/" + classID.String()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteClass(gomock.Any(), classID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown class", func() {
		s.mockCommands.EXPECT().DeleteClass(gomock.Any(), classID).Return(errs.ErrClassNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
