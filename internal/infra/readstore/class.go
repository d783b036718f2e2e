package readstore

import (
	"context"
	"encoding/json"
	"fmt"

	"fitclass-server/internal/infra"
	"fitclass-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClassReadStore struct {
	pool *pgxpool.Pool
}

func NewClassReadStore(pool *pgxpool.Pool) *ClassReadStore {
	return &ClassReadStore{pool: pool}
}

func (r *ClassReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClassView, error) {
	const q = `
		SELECT id, instructor_id, center_id, name, description,
		       category, intensity, starts_at, duration_min, max_capacity,
		       active, seat_booking, bookings, waitlist, seat_map,
		       created_at, updated_at
		FROM classes
		WHERE id = $1`

	var (
		view                     queries.ClassView
		bookingsRaw, waitlistRaw []byte
		seatMapRaw               []byte
	)

	err := r.pool.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.InstructorID, &view.CenterID, &view.Name, &view.Description,
		&view.Category, &view.Intensity, &view.StartsAt, &view.DurationMin, &view.MaxCapacity,
		&view.Active, &view.SeatBooking, &bookingsRaw, &waitlistRaw, &seatMapRaw,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("class not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find class by ID", err)
	}

	if err := json.Unmarshal(bookingsRaw, &view.Bookings); err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err)
	}
	if err := json.Unmarshal(waitlistRaw, &view.Waitlist); err != nil {
		return nil, infra.WrapRepoErr("failed to decode waitlist", err)
	}
	if len(seatMapRaw) > 0 {
		if err := json.Unmarshal(seatMapRaw, &view.SeatMap); err != nil {
			return nil, infra.WrapRepoErr("failed to decode seat map", err)
		}
	}
	return &view, nil
}

const listItemColumns = `
	id, name, category, intensity, starts_at, duration_min, max_capacity,
	jsonb_array_length(bookings) AS booked_count,
	jsonb_array_length(waitlist) AS waitlist_count,
	active`

func (r *ClassReadStore) ListActive(ctx context.Context) ([]*queries.ClassListItem, error) {
	q := `SELECT` + listItemColumns + `
		FROM classes
		WHERE active
		ORDER BY starts_at, id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active classes", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (r *ClassReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ClassListItem, error) {
	q := `SELECT` + listItemColumns + `
		FROM classes
		WHERE bookings @> $1::jsonb
		ORDER BY starts_at, id`

	member := fmt.Sprintf(`[{"user_id": %q}]`, userID.String())
	rows, err := r.pool.Query(ctx, q, member)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list classes by user", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (r *ClassReadStore) ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*queries.ClassListItem, error) {
	q := `SELECT` + listItemColumns + `
		FROM classes
		WHERE instructor_id = $1
		ORDER BY starts_at, id`

	rows, err := r.pool.Query(ctx, q, instructorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list classes by instructor", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (r *ClassReadStore) ListResults(ctx context.Context, classID uuid.UUID) ([]*queries.ResultView, error) {
	const q = `
		SELECT event_id, class_id, user_id, calories_burned, mechanical_work,
		       duration_min, completed_at
		FROM class_results
		WHERE class_id = $1
		ORDER BY completed_at, user_id`

	rows, err := r.pool.Query(ctx, q, classID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list class results", err)
	}
	defer rows.Close()

	var out []*queries.ResultView
	for rows.Next() {
		var v queries.ResultView
		if err := rows.Scan(
			&v.EventID, &v.ClassID, &v.UserID, &v.Calories, &v.Watts,
			&v.DurationMin, &v.CompletedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan class result", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate class results", err)
	}
	return out, nil
}

func scanListItems(rows pgx.Rows) ([]*queries.ClassListItem, error) {
	var out []*queries.ClassListItem
	for rows.Next() {
		var item queries.ClassListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Intensity, &item.StartsAt,
			&item.DurationMin, &item.MaxCapacity, &item.BookedCount, &item.WaitlistCount,
			&item.Active,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan class list item", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate class list", err)
	}
	return out, nil
}
