package queries

import (
	"context"
	"log/slog"
	"time"

	"fitclass-server/internal/domain/class"
	"fitclass-server/internal/infra"
	"fitclass-server/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ClassView struct {
	ID           uuid.UUID     `json:"id"`
	InstructorID uuid.UUID     `json:"instructor_id"`
	CenterID     uuid.UUID     `json:"center_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Intensity    string        `json:"intensity"`
	StartsAt     time.Time     `json:"starts_at"`
	DurationMin  int           `json:"duration_min"`
	MaxCapacity  int           `json:"max_capacity"`
	Active       bool          `json:"active"`
	SeatBooking  bool          `json:"seat_booking"`
	Bookings     []BookingView `json:"bookings"`
	Waitlist     []uuid.UUID   `json:"waitlist"`
	SeatMap      []bool        `json:"seat_map,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type BookingView struct {
	UserID      uuid.UUID  `json:"user_id"`
	SeatNumber  int        `json:"seat_number"`
	BookedAt    time.Time  `json:"booked_at"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

type ClassListItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Intensity     string    `json:"intensity"`
	StartsAt      time.Time `json:"starts_at"`
	DurationMin   int       `json:"duration_min"`
	MaxCapacity   int       `json:"max_capacity"`
	BookedCount   int       `json:"booked_count"`
	WaitlistCount int       `json:"waitlist_count"`
	Active        bool      `json:"active"`
}

type ResultView struct {
	EventID     uuid.UUID `json:"event_id"`
	ClassID     uuid.UUID `json:"class_id"`
	UserID      uuid.UUID `json:"user_id"`
	Calories    float64   `json:"calories_burned"`
	Watts       float64   `json:"mechanical_work"`
	DurationMin int       `json:"duration_min"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewClassView projects the aggregate into its read model. Mutating
// commands use it for read-after-write responses so the caller always
// sees the state that was actually persisted.
func NewClassView(c *class.Instance) *ClassView {
	bookings := c.Bookings()
	views := make([]BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = BookingView{
			UserID:     b.UserID,
			SeatNumber: b.SeatNumber,
			BookedAt:   b.BookedAt,
		}
		if b.IsCheckedIn() {
			t := b.CheckedInAt
			views[i].CheckedInAt = &t
		}
	}
	return &ClassView{
		ID:           c.ID(),
		InstructorID: c.InstructorID(),
		CenterID:     c.CenterID(),
		Name:         c.Name(),
		Description:  c.Description(),
		Category:     c.Category().String(),
		Intensity:    c.Intensity().String(),
		StartsAt:     c.StartsAt(),
		DurationMin:  c.DurationMin(),
		MaxCapacity:  c.MaxCapacity(),
		Active:       c.IsActive(),
		SeatBooking:  c.SeatBookingEnabled(),
		Bookings:     views,
		Waitlist:     c.Waitlist(),
		SeatMap:      c.SeatMap(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

type ClassReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClassView, error)
	ListActive(ctx context.Context) ([]*ClassListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ClassListItem, error)
	ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*ClassListItem, error)
	ListResults(ctx context.Context, classID uuid.UUID) ([]*ResultView, error)
}

// ListingCache holds the active-class listing. A nil-backed implementation
// must degrade to pass-through.
type ListingCache interface {
	GetActive(ctx context.Context) ([]*ClassListItem, bool)
	SetActive(ctx context.Context, items []*ClassListItem)
}

type ClassQueries interface {
	GetClass(ctx context.Context, id uuid.UUID) (*ClassView, error)
	ListActive(ctx context.Context) ([]*ClassListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ClassListItem, error)
	ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*ClassListItem, error)
	ListResults(ctx context.Context, classID uuid.UUID) ([]*ResultView, error)
}

type classQueriesImpl struct {
	store ClassReadStore
	cache ListingCache
}

func NewClassQueries(store ClassReadStore, cache ListingCache) ClassQueries {
	return &classQueriesImpl{
		store: store,
		cache: cache,
	}
}

func (q *classQueriesImpl) GetClass(ctx context.Context, id uuid.UUID) (*ClassView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *classQueriesImpl) ListActive(ctx context.Context) ([]*ClassListItem, error) {
	if items, ok := q.cache.GetActive(ctx); ok {
		return items, nil
	}

	items, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.cache.SetActive(ctx, items)
	slog.Debug("active class listing served from store", "count", len(items))
	return items, nil
}

func (q *classQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ClassListItem, error) {
	items, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *classQueriesImpl) ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*ClassListItem, error) {
	items, err := q.store.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

// ListResults deliberately skips a class-existence check: completion
// records are history and stay readable after the class is deleted.
func (q *classQueriesImpl) ListResults(ctx context.Context, classID uuid.UUID) ([]*ResultView, error) {
	results, err := q.store.ListResults(ctx, classID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return results, nil
}
