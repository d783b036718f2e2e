package commands

import (
	"context"
	"time"

	"fitclass-server/internal/domain/class"

	"github.com/google/uuid"
)

// ClassRepository is the write side of the class document store. Save is a
// conditional update keyed on the document version loaded by FindByID; a
// stale version surfaces as a Conflict-kind repository error.
type ClassRepository interface {
	Create(ctx context.Context, c *class.Instance) error
	FindByID(ctx context.Context, id uuid.UUID) (*class.Instance, error)
	Save(ctx context.Context, c *class.Instance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResultRepository appends completion records. Rows are write-once; there
// is no update or delete.
type ResultRepository interface {
	Create(ctx context.Context, r *class.Result) error
}

// ListingCache invalidation hook; every successful class mutation calls it.
type ListingCache interface {
	InvalidateActive(ctx context.Context)
}

// CompletionEvent is the outbound payload for one attendee of a finished
// class.
type CompletionEvent struct {
	EventID     uuid.UUID
	ClassID     uuid.UUID
	UserID      uuid.UUID
	Category    class.Category
	Calories    float64
	Watts       float64
	DurationMin int
	CompletedAt time.Time
}

// DeliveryReport records the per-collaborator outcome of one completion
// event. Failed deliveries are observability data, never errors.
type DeliveryReport struct {
	AnalyticsDelivered bool
	SocialDelivered    bool
}

// CompletionGateway fans a completion event out to the analytics and
// social collaborators. Implementations must contain every failure: the
// report is the only channel back to the pipeline.
type CompletionGateway interface {
	NotifyCompletion(ctx context.Context, ev CompletionEvent) DeliveryReport
}
