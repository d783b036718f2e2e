package commands

import (
	"context"
	"log/slog"

	"fitclass-server/internal/domain/class"
	"fitclass-server/internal/domain/workout"
	"fitclass-server/internal/infra"
	"fitclass-server/internal/pkg/clock"
	"fitclass-server/internal/pkg/errs"

	"github.com/google/uuid"
)

type FinishClassResult struct {
	ClassID     uuid.UUID
	Attendees   int
	Results     []uuid.UUID // event ids of the persisted results, in attendee order
	Undelivered int
}

type CompletionCommands interface {
	FinishClass(ctx context.Context, classID uuid.UUID) (*FinishClassResult, error)
}

type completionCommandsImpl struct {
	classes    ClassRepository
	results    ResultRepository
	gateway    CompletionGateway
	calculator *workout.Calculator
	cache      ListingCache
	clock      clock.Clock
}

func NewCompletionCommands(
	classes ClassRepository,
	results ResultRepository,
	gateway CompletionGateway,
	calculator *workout.Calculator,
	cache ListingCache,
	clock clock.Clock,
) CompletionCommands {
	return &completionCommandsImpl{
		classes:    classes,
		results:    results,
		gateway:    gateway,
		calculator: calculator,
		cache:      cache,
		clock:      clock,
	}
}

// FinishClass runs the completion pipeline: snapshot the booking list,
// write one metrics record per attendee, fan each record out to the
// collaborators, then deactivate the class.
//
// The pipeline is deliberately not transactional across attendees: a crash
// mid-loop leaves the already-written results in place, and re-running
// re-processes the current booking list with fresh event ids. Downstream
// consumers deduplicate on event id; this side does not skip attendees.
func (u *completionCommandsImpl) FinishClass(ctx context.Context, classID uuid.UUID) (*FinishClassResult, error) {
	inst, err := u.classes.FindByID(ctx, classID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Snapshot taken once; users cancelling concurrently still get a result.
	attendees := inst.Bookings()
	completedAt := u.clock.Now()

	out := &FinishClassResult{
		ClassID:   classID,
		Attendees: len(attendees),
	}

	for _, attendee := range attendees {
		metrics, err := u.calculator.Calculate(inst.Category(), inst.Intensity(), inst.DurationMin())
		if err != nil {
			// Unreachable with the closed enums; abort rather than skip silently.
			return nil, errs.Mark(err, errs.ErrUnsupportedCombination)
		}

		result, err := class.NewResult(
			uuid.New(),
			classID,
			attendee.UserID,
			metrics.Calories,
			metrics.Watts,
			inst.DurationMin(),
			completedAt,
		)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidClass)
		}

		if err := u.results.Create(ctx, result); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		out.Results = append(out.Results, result.EventID())

		report := u.gateway.NotifyCompletion(ctx, CompletionEvent{
			EventID:     result.EventID(),
			ClassID:     classID,
			UserID:      attendee.UserID,
			Category:    inst.Category(),
			Calories:    result.Calories(),
			Watts:       result.Watts(),
			DurationMin: result.DurationMin(),
			CompletedAt: completedAt,
		})
		if !report.AnalyticsDelivered || !report.SocialDelivered {
			out.Undelivered++
		}
	}

	// Deactivation goes through the conditional-update loop so bookings or
	// cancellations racing the pipeline are not overwritten.
	if _, err := mutateClass(ctx, u.classes, u.cache, classID, func(c *class.Instance) error {
		c.Finish()
		return nil
	}); err != nil {
		return nil, err
	}

	slog.Info("class finished",
		"class_id", classID.String(),
		"attendees", out.Attendees,
		"undelivered", out.Undelivered)

	return out, nil
}
