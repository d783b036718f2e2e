package commands

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"fitclass-server/internal/domain/class"
	"fitclass-server/internal/infra"
	"fitclass-server/internal/pkg/clock"
	"fitclass-server/internal/pkg/errs"
	"fitclass-server/internal/usecase/queries"

	"github.com/google/uuid"
)

// Conditional-update retry budget. Conflicts only happen when two workers
// race on the same class document, so a short ladder is enough.
const maxConflictRetries = 3

var conflictBackoffBase = 50 * time.Millisecond

type CreateClassParams struct {
	InstructorID uuid.UUID
	CenterID     uuid.UUID
	Name         string
	Description  string
	Category     class.Category
	Intensity    class.Intensity
	StartsAt     time.Time
	DurationMin  int
	MaxCapacity  int
	SeatBooking  bool
}

type BookClassResult struct {
	Class   *queries.ClassView
	Outcome class.BookOutcome
}

type CancelBookingResult struct {
	Class        *queries.ClassView
	FromWaitlist bool
	PromotedUser *uuid.UUID
}

type ClassCommands interface {
	CreateClass(ctx context.Context, params CreateClassParams) (*queries.ClassView, error)
	BookClass(ctx context.Context, classID, userID uuid.UUID, seatNumber *int) (*BookClassResult, error)
	JoinWaitlist(ctx context.Context, classID, userID uuid.UUID) (*queries.ClassView, error)
	CancelBooking(ctx context.Context, classID, userID uuid.UUID) (*CancelBookingResult, error)
	DeleteClass(ctx context.Context, classID uuid.UUID) error
}

type classCommandsImpl struct {
	classes ClassRepository
	cache   ListingCache
	clock   clock.Clock
}

func NewClassCommands(classes ClassRepository, cache ListingCache, clock clock.Clock) ClassCommands {
	return &classCommandsImpl{
		classes: classes,
		cache:   cache,
		clock:   clock,
	}
}

func (u *classCommandsImpl) CreateClass(ctx context.Context, params CreateClassParams) (*queries.ClassView, error) {
	inst, err := class.NewInstance(
		params.InstructorID,
		params.CenterID,
		params.Name,
		params.Description,
		params.Category,
		params.Intensity,
		params.StartsAt,
		params.DurationMin,
		params.MaxCapacity,
		params.SeatBooking,
		u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidClass)
	}

	if err := u.classes.Create(ctx, inst); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.cache.InvalidateActive(ctx)
	return queries.NewClassView(inst), nil
}

func (u *classCommandsImpl) BookClass(ctx context.Context, classID, userID uuid.UUID, seatNumber *int) (*BookClassResult, error) {
	var outcome class.BookOutcome

	inst, err := mutateClass(ctx, u.classes, u.cache, classID, func(c *class.Instance) error {
		var opErr error
		if seatNumber != nil {
			outcome, opErr = c.BookSeat(userID, *seatNumber, u.clock.Now())
		} else {
			outcome, opErr = c.Book(userID, u.clock.Now())
		}
		return opErr
	})
	if err != nil {
		return nil, err
	}

	return &BookClassResult{
		Class:   queries.NewClassView(inst),
		Outcome: outcome,
	}, nil
}

func (u *classCommandsImpl) JoinWaitlist(ctx context.Context, classID, userID uuid.UUID) (*queries.ClassView, error) {
	inst, err := mutateClass(ctx, u.classes, u.cache, classID, func(c *class.Instance) error {
		return c.JoinWaitlist(userID)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewClassView(inst), nil
}

func (u *classCommandsImpl) CancelBooking(ctx context.Context, classID, userID uuid.UUID) (*CancelBookingResult, error) {
	var outcome class.CancelOutcome

	inst, err := mutateClass(ctx, u.classes, u.cache, classID, func(c *class.Instance) error {
		var opErr error
		outcome, opErr = c.Cancel(userID, u.clock.Now())
		return opErr
	})
	if err != nil {
		return nil, err
	}

	if outcome.PromotedUser != nil {
		slog.Info("waitlisted user promoted",
			"class_id", classID.String(),
			"promoted_user_id", outcome.PromotedUser.String())
	}

	return &CancelBookingResult{
		Class:        queries.NewClassView(inst),
		FromWaitlist: outcome.FromWaitlist,
		PromotedUser: outcome.PromotedUser,
	}, nil
}

func (u *classCommandsImpl) DeleteClass(ctx context.Context, classID uuid.UUID) error {
	// Completion records for the class survive deletion as history.
	if err := u.classes.Delete(ctx, classID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrClassNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	u.cache.InvalidateActive(ctx)
	return nil
}

// mutateClass runs one read-modify-write cycle against the class document:
// load the current snapshot, apply the domain transition in memory, persist
// as a single conditional write. A version conflict means another worker
// won the race; reload and retry with backoff so booking-list and seat-map
// changes are never applied to a stale view.
func mutateClass(
	ctx context.Context,
	classes ClassRepository,
	cache ListingCache,
	classID uuid.UUID,
	fn func(c *class.Instance) error,
) (*class.Instance, error) {
	for attempt := 0; ; attempt++ {
		inst, err := classes.FindByID(ctx, classID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrClassNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := fn(inst); err != nil {
			return nil, mapDomainErr(err)
		}

		err = classes.Save(ctx, inst)
		if err == nil {
			cache.InvalidateActive(ctx)
			return inst, nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if attempt >= maxConflictRetries {
			slog.Error("class update failed after max retries",
				"class_id", classID.String(),
				"attempts", attempt+1)
			return nil, errs.Mark(err, errs.ErrConflictRetryExhausted)
		}

		waitTime := conflictBackoff(attempt)
		slog.Warn("retrying class update after version conflict",
			"class_id", classID.String(),
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds())

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, class.ErrAlreadyBooked):
		return errs.Mark(err, errs.ErrAlreadyBooked)
	case errors.Is(err, class.ErrAlreadyWaitlisted):
		return errs.Mark(err, errs.ErrAlreadyWaitlisted)
	case errors.Is(err, class.ErrSeatTaken):
		return errs.Mark(err, errs.ErrSeatTaken)
	case errors.Is(err, class.ErrSeatBookingDisabled):
		return errs.Mark(err, errs.ErrSeatBookingDisabled)
	case errors.Is(err, class.ErrSeatOutOfRange):
		return errs.Mark(err, errs.ErrSeatOutOfRange)
	case errors.Is(err, class.ErrCapacityExceeded):
		return errs.Mark(err, errs.ErrCapacityExceeded)
	case errors.Is(err, class.ErrClassInactive):
		return errs.Mark(err, errs.ErrClassInactive)
	case errors.Is(err, class.ErrUserNotFound):
		return errs.Mark(err, errs.ErrAttendeeNotFound)
	default:
		return errs.Mark(err, errs.ErrInvalidClass)
	}
}

// Exponential backoff with jitter, same ladder the transaction layer uses.
func conflictBackoff(attempt int) time.Duration {
	waitTime := time.Duration(1<<attempt) * conflictBackoffBase
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}
