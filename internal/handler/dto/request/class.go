package request

import (
	"strings"
	"time"

	"fitclass-server/internal/domain/class"
	"fitclass-server/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateClassRequest struct {
	InstructorID uuid.UUID `json:"instructor_id" binding:"required"`
	CenterID     uuid.UUID `json:"center_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	Category     string    `json:"category" binding:"required,oneof=yoga pilates crossfit spinning"`
	Intensity    string    `json:"intensity" binding:"required,oneof=easy medium hard"`
	StartsAt     time.Time `json:"starts_at" binding:"required"`
	DurationMin  int       `json:"duration_min" binding:"required,gt=0"`
	MaxCapacity  int       `json:"max_capacity" binding:"min=0"`
	SeatBooking  bool      `json:"seat_booking"`
}

func (r CreateClassRequest) ToParams() commands.CreateClassParams {
	return commands.CreateClassParams{
		InstructorID: r.InstructorID,
		CenterID:     r.CenterID,
		Name:         strings.TrimSpace(r.Name),
		Description:  strings.TrimSpace(r.Description),
		Category:     class.Category(r.Category),
		Intensity:    class.Intensity(r.Intensity),
		StartsAt:     r.StartsAt,
		DurationMin:  r.DurationMin,
		MaxCapacity:  r.MaxCapacity,
		SeatBooking:  r.SeatBooking,
	}
}

// BookClassRequest carries an optional seat choice. Absent seat_number
// books the next free slot; present seat_number requests that exact seat.
type BookClassRequest struct {
	SeatNumber *int `json:"seat_number,omitempty" binding:"omitempty,min=0"`
}
