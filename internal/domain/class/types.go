package class

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryYoga     Category = "yoga"
	CategoryPilates  Category = "pilates"
	CategoryCrossfit Category = "crossfit"
	CategorySpinning Category = "spinning"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryYoga, CategoryPilates, CategoryCrossfit, CategorySpinning:
		return true
	default:
		return false
	}
}

type Intensity string

const (
	IntensityEasy   Intensity = "easy"
	IntensityMedium Intensity = "medium"
	IntensityHard   Intensity = "hard"
)

func (i Intensity) String() string {
	return string(i)
}

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityEasy, IntensityMedium, IntensityHard:
		return true
	default:
		return false
	}
}

// NoSeat is the seat number recorded on bookings of classes that do not
// track individual seats.
const NoSeat = 0

// Booking is one user's reservation inside a class. It is owned by its
// parent Instance and never referenced on its own.
type Booking struct {
	UserID      uuid.UUID
	SeatNumber  int
	BookedAt    time.Time
	CheckedInAt time.Time // zero until the user checks in
}

func (b Booking) IsCheckedIn() bool {
	return !b.CheckedInAt.IsZero()
}

// BookOutcome reports whether a booking request ended up in the booking
// list or on the waitlist.
type BookOutcome string

const (
	OutcomeBooked     BookOutcome = "booked"
	OutcomeWaitlisted BookOutcome = "waitlisted"
)

// CancelOutcome describes what a cancellation changed: whether the user
// was removed from the waitlist (as opposed to the booking list) and, if a
// booked slot was vacated, which waitlisted user was promoted into it.
type CancelOutcome struct {
	FromWaitlist bool
	PromotedUser *uuid.UUID
}
