package class

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveCalories = errors.New("calories must be positive")
	ErrNonPositiveWatts    = errors.New("watts must be positive")
)

// Result is the immutable per-attendee metrics record written once when a
// class finishes. The event id travels with every outbound completion
// event so collaborators can deduplicate repeated deliveries.
type Result struct {
	eventID     uuid.UUID
	classID     uuid.UUID
	userID      uuid.UUID
	calories    float64
	watts       float64
	durationMin int
	completedAt time.Time
}

func NewResult(
	eventID, classID, userID uuid.UUID,
	calories, watts float64,
	durationMin int,
	completedAt time.Time,
) (*Result, error) {
	if calories <= 0 {
		return nil, ErrNonPositiveCalories
	}
	if watts <= 0 {
		return nil, ErrNonPositiveWatts
	}
	return &Result{
		eventID:     eventID,
		classID:     classID,
		userID:      userID,
		calories:    calories,
		watts:       watts,
		durationMin: durationMin,
		completedAt: completedAt,
	}, nil
}

func ReconstructResult(
	eventID, classID, userID uuid.UUID,
	calories, watts float64,
	durationMin int,
	completedAt time.Time,
) *Result {
	return &Result{
		eventID:     eventID,
		classID:     classID,
		userID:      userID,
		calories:    calories,
		watts:       watts,
		durationMin: durationMin,
		completedAt: completedAt,
	}
}

func (r *Result) EventID() uuid.UUID      { return r.eventID }
func (r *Result) ClassID() uuid.UUID      { return r.classID }
func (r *Result) UserID() uuid.UUID       { return r.userID }
func (r *Result) Calories() float64       { return r.calories }
func (r *Result) Watts() float64          { return r.watts }
func (r *Result) DurationMin() int        { return r.durationMin }
func (r *Result) CompletedAt() time.Time { return r.completedAt }
