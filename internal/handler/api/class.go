package api

import (
	"errors"
	"net/http"

	reqdto "fitclass-server/internal/handler/dto/request"
	resdto "fitclass-server/internal/handler/dto/response"
	"fitclass-server/internal/handler/httperr"
	"fitclass-server/internal/handler/middleware"
	"fitclass-server/internal/pkg/errs"
	"fitclass-server/internal/usecase/commands"
	"fitclass-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClassHandler struct {
	classCommands      commands.ClassCommands
	completionCommands commands.CompletionCommands
	classQueries       queries.ClassQueries
}

func NewClassHandler(
	classCommands commands.ClassCommands,
	completionCommands commands.CompletionCommands,
	classQueries queries.ClassQueries,
) *ClassHandler {
	return &ClassHandler{
		classCommands:      classCommands,
		completionCommands: completionCommands,
		classQueries:       classQueries,
	}
}

// @Summary Create class
// @Description Create a new class instance; the seat map is allocated when seat booking is enabled
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClassRequest true "Class definition"
// @Success 201 {object} resdto.ClassResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req reqdto.CreateClassRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.classCommands.CreateClass(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, errs.ErrInvalidClass) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid class definition",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClassView(view))
}

// @Summary Book class
// @Description Book a slot in a class; full classes waitlist the user. An optional seat_number requests a specific seat.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param request body reqdto.BookClassRequest false "Optional seat choice"
// @Success 200 {object} resdto.BookClassResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /classes/{id}/bookings [post]
func (h *ClassHandler) BookClass(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	var req reqdto.BookClassRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.classCommands.BookClass(c.Request.Context(), classID, userID, req.SeatNumber)
	if err != nil {
		h.abortBookingErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookClassResult(result))
}

// @Summary Join waitlist
// @Description Append the authenticated user to the end of the class waitlist
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} resdto.ClassResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /classes/{id}/waitlist [post]
func (h *ClassHandler) JoinWaitlist(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	view, err := h.classCommands.JoinWaitlist(c.Request.Context(), classID, userID)
	if err != nil {
		h.abortBookingErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClassView(view))
}

// @Summary Cancel booking
// @Description Cancel the authenticated user's booking or waitlist entry; vacated slots promote the head of the waitlist
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 404 {object} map[string]string
// @Router /classes/{id}/bookings [delete]
func (h *ClassHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	result, err := h.classCommands.CancelBooking(c.Request.Context(), classID, userID)
	if err != nil {
		h.abortBookingErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelBookingResult(result))
}

// @Summary Finish class
// @Description Run the completion pipeline: per-attendee metrics, collaborator fan-out, deactivation
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} resdto.FinishClassResponse
// @Failure 404 {object} map[string]string
// @Router /classes/{id}/finish [post]
func (h *ClassHandler) FinishClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	result, err := h.completionCommands.FinishClass(c.Request.Context(), classID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrClassNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Class not found",
			})
		case errors.Is(err, errs.ErrConflictRetryExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Class is being updated concurrently, retry later",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFinishClassResult(result))
}

// @Summary Delete class
// @Description Remove a class permanently; its completion records remain as history
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /classes/{id} [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	if err := h.classCommands.DeleteClass(c.Request.Context(), classID); err != nil {
		if errors.Is(err, errs.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Class not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get class
// @Description Get the full class document by ID
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} resdto.ClassResponse
// @Failure 404 {object} map[string]string
// @Router /classes/{id} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	view, err := h.classQueries.GetClass(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, errs.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Class not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClassView(view))
}

// @Summary List active classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClassListResponse
// @Router /classes [get]
func (h *ClassHandler) ListActiveClasses(c *gin.Context) {
	items, err := h.classQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, toListResponse(items))
}

// @Summary List classes booked by a user
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.ClassListResponse
// @Router /users/{id}/classes [get]
func (h *ClassHandler) ListClassesByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	items, err := h.classQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, toListResponse(items))
}

// @Summary List classes taught by an instructor
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instructor ID"
// @Success 200 {array} resdto.ClassListResponse
// @Router /instructors/{id}/classes [get]
func (h *ClassHandler) ListClassesByInstructor(c *gin.Context) {
	instructorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid instructor ID format",
		})
		return
	}

	items, err := h.classQueries.ListByInstructor(c.Request.Context(), instructorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, toListResponse(items))
}

// @Summary List completion records for a class
// @Description Completion records survive class deletion, so a deleted class still serves its history
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {array} resdto.ClassResultResponse
// @Router /classes/{id}/results [get]
func (h *ClassHandler) ListClassResults(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid class ID format",
		})
		return
	}

	results, err := h.classQueries.ListResults(c.Request.Context(), classID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ClassResultResponse, len(results))
	for i, rm := range results {
		response[i] = resdto.FromResultView(rm)
	}
	c.JSON(http.StatusOK, response)
}

func (h *ClassHandler) abortBookingErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrClassNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Class not found",
		})
	case errors.Is(err, errs.ErrAttendeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User has neither a booking nor a waitlist entry",
		})
	case errors.Is(err, errs.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "User already booked this class",
		})
	case errors.Is(err, errs.ErrAlreadyWaitlisted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "User already on the waitlist",
		})
	case errors.Is(err, errs.ErrSeatTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Seat already taken",
		})
	case errors.Is(err, errs.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Class is at capacity",
		})
	case errors.Is(err, errs.ErrClassInactive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Class is no longer active",
		})
	case errors.Is(err, errs.ErrConflictRetryExhausted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Class is being updated concurrently, retry later",
		})
	case errors.Is(err, errs.ErrSeatBookingDisabled):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Seat booking is disabled for this class",
		})
	case errors.Is(err, errs.ErrSeatOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Seat number out of range",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func toListResponse(items []*queries.ClassListItem) []*resdto.ClassListResponse {
	response := make([]*resdto.ClassListResponse, len(items))
	for i, rm := range items {
		response[i] = resdto.FromClassListItem(rm)
	}
	return response
}
