package repository

import (
	"context"
	"encoding/json"
	"time"

	"fitclass-server/internal/domain/class"
	"fitclass-server/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassRepository persists each class as one document row: scalar columns
// plus the booking list, waitlist and seat map as jsonb. Booking-list and
// seat-map changes always land in the same UPDATE, guarded by the version
// column, so the two can never diverge in the store.
type ClassRepository struct {
	pool *pgxpool.Pool
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

type bookingDoc struct {
	UserID      uuid.UUID  `json:"user_id"`
	SeatNumber  int        `json:"seat_number"`
	BookedAt    time.Time  `json:"booked_at"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

func (r *ClassRepository) Create(ctx context.Context, c *class.Instance) error {
	bookings, waitlist, seatMap, err := marshalCapacityState(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode class document", err)
	}

	const q = `
		INSERT INTO classes (
			id, instructor_id, center_id, name, description,
			category, intensity, starts_at, duration_min, max_capacity,
			active, seat_booking, bookings, waitlist, seat_map,
			version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err = r.pool.Exec(ctx, q,
		c.ID(), c.InstructorID(), c.CenterID(), c.Name(), c.Description(),
		c.Category().String(), c.Intensity().String(), c.StartsAt(), c.DurationMin(), c.MaxCapacity(),
		c.IsActive(), c.SeatBookingEnabled(), bookings, waitlist, seatMap,
		c.Version(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert class", err)
	}
	return nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*class.Instance, error) {
	const q = `
		SELECT id, instructor_id, center_id, name, description,
		       category, intensity, starts_at, duration_min, max_capacity,
		       active, seat_booking, bookings, waitlist, seat_map,
		       version, created_at, updated_at
		FROM classes
		WHERE id = $1`

	var (
		classID, instructorID, centerID uuid.UUID
		name, description               string
		category, intensity             string
		startsAt, createdAt, updatedAt  time.Time
		durationMin, maxCapacity        int
		active, seatBooking             bool
		bookingsRaw, waitlistRaw        []byte
		seatMapRaw                      []byte
		version                         int64
	)

	err := r.pool.QueryRow(ctx, q, id).Scan(
		&classID, &instructorID, &centerID, &name, &description,
		&category, &intensity, &startsAt, &durationMin, &maxCapacity,
		&active, &seatBooking, &bookingsRaw, &waitlistRaw, &seatMapRaw,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("class not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find class by ID", err)
	}

	bookings, waitlist, seatMap, err := unmarshalCapacityState(bookingsRaw, waitlistRaw, seatMapRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode class document", err)
	}

	return class.ReconstructInstance(
		classID, instructorID, centerID,
		name, description,
		class.Category(category), class.Intensity(intensity),
		startsAt, durationMin, maxCapacity,
		active, seatBooking,
		bookings, waitlist, seatMap,
		version, createdAt, updatedAt,
	), nil
}

// Save writes the mutable capacity state back conditionally on the version
// the document was loaded with. Zero rows affected means another worker
// updated the document in between; the caller reloads and retries.
func (r *ClassRepository) Save(ctx context.Context, c *class.Instance) error {
	bookings, waitlist, seatMap, err := marshalCapacityState(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode class document", err)
	}

	const q = `
		UPDATE classes
		SET bookings = $1, waitlist = $2, seat_map = $3,
		    active = $4, updated_at = $5, version = version + 1
		WHERE id = $6 AND version = $7`

	tag, err := r.pool.Exec(ctx, q,
		bookings, waitlist, seatMap,
		c.IsActive(), c.UpdatedAt(), c.ID(), c.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update class", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("class version changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *ClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete class", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("class not found", nil, infra.KindNotFound)
	}
	return nil
}

func marshalCapacityState(c *class.Instance) (bookings, waitlist, seatMap []byte, err error) {
	docs := make([]bookingDoc, 0, len(c.Bookings()))
	for _, b := range c.Bookings() {
		doc := bookingDoc{
			UserID:     b.UserID,
			SeatNumber: b.SeatNumber,
			BookedAt:   b.BookedAt,
		}
		if b.IsCheckedIn() {
			t := b.CheckedInAt
			doc.CheckedInAt = &t
		}
		docs = append(docs, doc)
	}

	if bookings, err = json.Marshal(docs); err != nil {
		return nil, nil, nil, err
	}
	if waitlist, err = json.Marshal(c.Waitlist()); err != nil {
		return nil, nil, nil, err
	}
	if c.SeatBookingEnabled() {
		if seatMap, err = json.Marshal(c.SeatMap()); err != nil {
			return nil, nil, nil, err
		}
	}
	return bookings, waitlist, seatMap, nil
}

func unmarshalCapacityState(bookingsRaw, waitlistRaw, seatMapRaw []byte) ([]class.Booking, []uuid.UUID, []bool, error) {
	var docs []bookingDoc
	if err := json.Unmarshal(bookingsRaw, &docs); err != nil {
		return nil, nil, nil, err
	}
	bookings := make([]class.Booking, len(docs))
	for i, d := range docs {
		bookings[i] = class.Booking{
			UserID:     d.UserID,
			SeatNumber: d.SeatNumber,
			BookedAt:   d.BookedAt,
		}
		if d.CheckedInAt != nil {
			bookings[i].CheckedInAt = *d.CheckedInAt
		}
	}

	var waitlist []uuid.UUID
	if err := json.Unmarshal(waitlistRaw, &waitlist); err != nil {
		return nil, nil, nil, err
	}

	var seatMap []bool
	if len(seatMapRaw) > 0 {
		if err := json.Unmarshal(seatMapRaw, &seatMap); err != nil {
			return nil, nil, nil, err
		}
	}
	return bookings, waitlist, seatMap, nil
}
