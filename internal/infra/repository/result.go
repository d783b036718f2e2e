package repository

import (
	"context"

	"fitclass-server/internal/domain/class"
	"fitclass-server/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository appends class_results rows. The table is write-once
// history: no updates, no deletes, and no FK cascade from classes.
type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func (r *ResultRepository) Create(ctx context.Context, res *class.Result) error {
	const q = `
		INSERT INTO class_results (
			event_id, class_id, user_id, calories_burned, mechanical_work,
			duration_min, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, q,
		res.EventID(), res.ClassID(), res.UserID(), res.Calories(), res.Watts(),
		res.DurationMin(), res.CompletedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert class result", err)
	}
	return nil
}
