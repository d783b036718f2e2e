//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fitclass-server/internal/domain/class"
	"fitclass-server/internal/infra"
	"fitclass-server/internal/pkg/clock"
	"fitclass-server/internal/pkg/errs"
	"fitclass-server/internal/usecase/commands"
	"fitclass-server/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClassRepo mimics the document store's conditional-update contract:
// Save succeeds only when the caller's version matches the stored version.
type fakeClassRepo struct {
	mu      sync.Mutex
	classes map[uuid.UUID]*class.Instance

	// saveHook runs before each Save under the lock, letting tests inject
	// a competing write between a FindByID and the Save that follows it.
	saveHook func(r *fakeClassRepo)
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: make(map[uuid.UUID]*class.Instance)}
}

func snapshot(c *class.Instance, version int64) *class.Instance {
	return class.ReconstructInstance(
		c.ID(), c.InstructorID(), c.CenterID(),
		c.Name(), c.Description(),
		c.Category(), c.Intensity(),
		c.StartsAt(), c.DurationMin(), c.MaxCapacity(),
		c.IsActive(), c.SeatBookingEnabled(),
		c.Bookings(), c.Waitlist(), c.SeatMap(),
		version, c.CreatedAt(), c.UpdatedAt(),
	)
}

func (r *fakeClassRepo) Create(_ context.Context, c *class.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[c.ID()] = snapshot(c, c.Version())
	return nil
}

func (r *fakeClassRepo) FindByID(_ context.Context, id uuid.UUID) (*class.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.classes[id]
	if !ok {
		return nil, infra.WrapRepoErr("class not found", nil, infra.KindNotFound)
	}
	return snapshot(stored, stored.Version()), nil
}

func (r *fakeClassRepo) Save(_ context.Context, c *class.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveHook != nil {
		r.saveHook(r)
	}
	stored, ok := r.classes[c.ID()]
	if !ok {
		return infra.WrapRepoErr("class not found", nil, infra.KindNotFound)
	}
	if stored.Version() != c.Version() {
		return infra.WrapRepoErr("class version changed concurrently", nil, infra.KindConflict)
	}
	r.classes[c.ID()] = snapshot(c, c.Version()+1)
	return nil
}

func (r *fakeClassRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.classes[id]; !ok {
		return infra.WrapRepoErr("class not found", nil, infra.KindNotFound)
	}
	delete(r.classes, id)
	return nil
}

type fakeListingCache struct {
	mu            sync.Mutex
	invalidations int
}

func (c *fakeListingCache) InvalidateActive(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
}

func newClassCommands(repo *fakeClassRepo, cache *fakeListingCache) commands.ClassCommands {
	return commands.NewClassCommands(repo, cache, clock.NewFixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
}

func mustCreateClass(t *testing.T, uc commands.ClassCommands, b *builder.ClassBuilder) uuid.UUID {
	t.Helper()
	view, err := uc.CreateClass(context.Background(), b.BuildCreateParams())
	require.NoError(t, err)
	return view.ID
}

func TestCreateClass(t *testing.T) {
	repo := newFakeClassRepo()
	cache := &fakeListingCache{}
	uc := newClassCommands(repo, cache)

	t.Run("persists and returns the created view", func(t *testing.T) {
		view, err := uc.CreateClass(context.Background(), builder.NewClassBuilder().BuildCreateParams())
		require.NoError(t, err)

		assert.True(t, view.Active)
		assert.Empty(t, view.Bookings)
		assert.Equal(t, 1, cache.invalidations)

		stored, err := repo.FindByID(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.Name, stored.Name())
	})

	t.Run("invalid definition maps to the invalid-class sentinel", func(t *testing.T) {
		params := builder.NewClassBuilder().BuildCreateParams()
		params.DurationMin = 0

		_, err := uc.CreateClass(context.Background(), params)
		assert.ErrorIs(t, err, errs.ErrInvalidClass)
	})
}

func TestBookClass(t *testing.T) {
	t.Run("books and returns the persisted state", func(t *testing.T) {
		repo := newFakeClassRepo()
		cache := &fakeListingCache{}
		uc := newClassCommands(repo, cache)
		classID := mustCreateClass(t, uc, builder.NewClassBuilder().WithCapacity(2))

		userID := uuid.New()
		result, err := uc.BookClass(context.Background(), classID, userID, nil)
		require.NoError(t, err)

		assert.Equal(t, class.OutcomeBooked, result.Outcome)
		require.Len(t, result.Class.Bookings, 1)
		assert.Equal(t, userID, result.Class.Bookings[0].UserID)
	})

	t.Run("full class waitlists the user", func(t *testing.T) {
		repo := newFakeClassRepo()
		uc := newClassCommands(repo, &fakeListingCache{})
		classID := mustCreateClass(t, uc, builder.NewClassBuilder().WithCapacity(1))

		_, err := uc.BookClass(context.Background(), classID, uuid.New(), nil)
		require.NoError(t, err)

		waitlisted := uuid.New()
		result, err := uc.BookClass(context.Background(), classID, waitlisted, nil)
		require.NoError(t, err)
		assert.Equal(t, class.OutcomeWaitlisted, result.Outcome)
		assert.Equal(t, []uuid.UUID{waitlisted}, result.Class.Waitlist)
	})

	t.Run("seat request flows through to the domain", func(t *testing.T) {
		repo := newFakeClassRepo()
		uc := newClassCommands(repo, &fakeListingCache{})
		classID := mustCreateClass(t, uc, builder.NewClassBuilder().WithSeatBooking().WithCapacity(5))

		seat := 3
		result, err := uc.BookClass(context.Background(), classID, uuid.New(), &seat)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Class.Bookings[0].SeatNumber)
		assert.True(t, result.Class.SeatMap[3])

		_, err = uc.BookClass(context.Background(), classID, uuid.New(), &seat)
		assert.ErrorIs(t, err, errs.ErrSeatTaken)
	})

	t.Run("unknown class", func(t *testing.T) {
		uc := newClassCommands(newFakeClassRepo(), &fakeListingCache{})
		_, err := uc.BookClass(context.Background(), uuid.New(), uuid.New(), nil)
		assert.ErrorIs(t, err, errs.ErrClassNotFound)
	})

	t.Run("retries through a version conflict", func(t *testing.T) {
		repo := newFakeClassRepo()
		uc := newClassCommands(repo, &fakeListingCache{})
		classID := mustCreateClass(t, uc, builder.NewClassBuilder().WithCapacity(5))

		// First Save attempt collides with a competing write; the retry
		// reloads the bumped version and succeeds.
		fired := false
		repo.saveHook = func(r *fakeClassRepo) {
			if fired {
				return
			}
			fired = true
			stored := r.classes[classID]
			r.classes[classID] = snapshot(stored, stored.Version()+1)
		}

		result, err := uc.BookClass(context.Background(), classID, uuid.New(), nil)
		require.NoError(t, err)
		assert.Equal(t, class.OutcomeBooked, result.Outcome)
	})

	t.Run("gives up after exhausting conflict retries", func(t *testing.T) {
		repo := newFakeClassRepo()
		uc := newClassCommands(repo, &fakeListingCache{})
		classID := mustCreateClass(t, uc, builder.NewClassBuilder().WithCapacity(5))

		repo.saveHook = func(r *fakeClassRepo) {
			stored := r.classes[classID]
			r.classes[classID] = snapshot(stored, stored.Version()+1)
		}

		_, err := uc.BookClass(context.Background(), classID, uuid.New(), nil)
		assert.ErrorIs(t, err, errs.ErrConflictRetryExhausted)
	})
}

func TestJoinWaitlist(t *testing.T) {
	repo := newFakeClassRepo()
	uc := newClassCommands(repo, &fakeListingCache{})
	classID := mustCreateClass(t, uc, builder.NewClassBuilder().WithCapacity(1))

	userID := uuid.New()
	view, err := uc.JoinWaitlist(context.Background(), classID, userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, view.Waitlist)

	_, err = uc.JoinWaitlist(context.Background(), classID, userID)
	assert.ErrorIs(t, err, errs.ErrAlreadyWaitlisted)
}

func TestCancelBooking(t *testing.T) {
	t.Run("promotes the waitlist head on cancellation", func(t *testing.T) {
		repo := newFakeClassRepo()
		uc := newClassCommands(repo, &fakeListingCache{})
		classID := mustCreateClass(t, uc, builder.NewClassBuilder().WithCapacity(1))

		booked := uuid.New()
		waiting := uuid.New()
		_, err := uc.BookClass(context.Background(), classID, booked, nil)
		require.NoError(t, err)
		_, err = uc.JoinWaitlist(context.Background(), classID, waiting)
		require.NoError(t, err)

		result, err := uc.CancelBooking(context.Background(), classID, booked)
		require.NoError(t, err)
		assert.False(t, result.FromWaitlist)
		require.NotNil(t, result.PromotedUser)
		assert.Equal(t, waiting, *result.PromotedUser)
		require.Len(t, result.Class.Bookings, 1)
		assert.Equal(t, waiting, result.Class.Bookings[0].UserID)
		assert.Empty(t, result.Class.Waitlist)
	})

	t.Run("user with neither booking nor waitlist entry", func(t *testing.T) {
		repo := newFakeClassRepo()
		uc := newClassCommands(repo, &fakeListingCache{})
		classID := mustCreateClass(t, uc, builder.NewClassBuilder())

		_, err := uc.CancelBooking(context.Background(), classID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrAttendeeNotFound)
	})
}

func TestDeleteClass(t *testing.T) {
	repo := newFakeClassRepo()
	cache := &fakeListingCache{}
	uc := newClassCommands(repo, cache)
	classID := mustCreateClass(t, uc, builder.NewClassBuilder())

	require.NoError(t, uc.DeleteClass(context.Background(), classID))
	assert.ErrorIs(t, uc.DeleteClass(context.Background(), classID), errs.ErrClassNotFound)

	_, err := repo.FindByID(context.Background(), classID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
