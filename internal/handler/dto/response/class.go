package response

import (
	"log/slog"
	"time"

	"fitclass-server/internal/usecase/commands"
	"fitclass-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClassResponse struct {
	ID           uuid.UUID         `json:"id"`
	InstructorID uuid.UUID         `json:"instructorId"`
	CenterID     uuid.UUID         `json:"centerId"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Intensity    string            `json:"intensity"`
	StartsAt     time.Time         `json:"startsAt"`
	DurationMin  int               `json:"durationMin"`
	MaxCapacity  int               `json:"maxCapacity"`
	Active       bool              `json:"active"`
	SeatBooking  bool              `json:"seatBooking"`
	Bookings     []BookingResponse `json:"bookings"`
	Waitlist     []uuid.UUID       `json:"waitlist"`
	SeatMap      []bool            `json:"seatMap,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type BookingResponse struct {
	UserID      uuid.UUID  `json:"userId"`
	SeatNumber  int        `json:"seatNumber"`
	BookedAt    time.Time  `json:"bookedAt"`
	CheckedInAt *time.Time `json:"checkedInAt,omitempty"`
}

type BookClassResponse struct {
	Status string         `json:"status"` // "booked" or "waitlisted"
	Class  *ClassResponse `json:"class"`
}

type CancelBookingResponse struct {
	FromWaitlist bool           `json:"fromWaitlist"`
	PromotedUser *uuid.UUID     `json:"promotedUserId,omitempty"`
	Class        *ClassResponse `json:"class"`
}

type ClassListResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Intensity     string    `json:"intensity"`
	StartsAt      time.Time `json:"startsAt"`
	DurationMin   int       `json:"durationMin"`
	MaxCapacity   int       `json:"maxCapacity"`
	BookedCount   int       `json:"bookedCount"`
	WaitlistCount int       `json:"waitlistCount"`
	Active        bool      `json:"active"`
}

type ClassResultResponse struct {
	EventID     uuid.UUID `json:"eventId"`
	ClassID     uuid.UUID `json:"classId"`
	UserID      uuid.UUID `json:"userId"`
	Calories    float64   `json:"caloriesBurned"`
	Watts       float64   `json:"mechanicalWork"`
	DurationMin int       `json:"durationMin"`
	CompletedAt time.Time `json:"completedAt"`
}

type FinishClassResponse struct {
	ClassID        uuid.UUID   `json:"classId"`
	Attendees      int         `json:"attendees"`
	ResultEventIDs []uuid.UUID `json:"resultEventIds"`
	Undelivered    int         `json:"undelivered"`
}

func FromClassView(rm *queries.ClassView) *ClassResponse {
	var resp ClassResponse
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("failed to map class view", "error", err.Error())
		return &ClassResponse{}
	}
	return &resp
}

func FromClassListItem(rm *queries.ClassListItem) *ClassListResponse {
	var resp ClassListResponse
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("failed to map class list item", "error", err.Error())
		return &ClassListResponse{}
	}
	return &resp
}

func FromResultView(rm *queries.ResultView) *ClassResultResponse {
	var resp ClassResultResponse
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("failed to map class result view", "error", err.Error())
		return &ClassResultResponse{}
	}
	return &resp
}

func FromBookClassResult(res *commands.BookClassResult) *BookClassResponse {
	return &BookClassResponse{
		Status: string(res.Outcome),
		Class:  FromClassView(res.Class),
	}
}

func FromCancelBookingResult(res *commands.CancelBookingResult) *CancelBookingResponse {
	return &CancelBookingResponse{
		FromWaitlist: res.FromWaitlist,
		PromotedUser: res.PromotedUser,
		Class:        FromClassView(res.Class),
	}
}

func FromFinishClassResult(res *commands.FinishClassResult) *FinishClassResponse {
	return &FinishClassResponse{
		ClassID:        res.ClassID,
		Attendees:      res.Attendees,
		ResultEventIDs: res.Results,
		Undelivered:    res.Undelivered,
	}
}
