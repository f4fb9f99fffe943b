package history

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, record *GenerationRecord) (*GenerationRecord, error) {
	query := `
		INSERT INTO generations (profile_id, prompt, model_id, credits_cost, result_url, job_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, profile_id, prompt, model_id, credits_cost, result_url, job_id, status, created_at
	`

	var inserted GenerationRecord
	err := r.db.GetContext(ctx, &inserted, query,
		record.ProfileID,
		record.Prompt,
		record.ModelID,
		record.CreditsCost,
		record.ResultURL,
		record.JobID,
		record.Status,
	)
	if err != nil {
		return nil, err
	}

	return &inserted, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]GenerationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, profile_id, prompt, model_id, credits_cost, result_url, job_id, status, created_at
		FROM generations
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var records []GenerationRecord
	err := r.db.SelectContext(ctx, &records, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM generations WHERE profile_id = $1`, userID)
	return err
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM generations`)
	return count, err
}

func (r *repository) TotalCreditsSpent(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(credits_cost), 0) FROM generations`)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return total, err
}
