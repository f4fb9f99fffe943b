package recharge

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

func (r *repository) Append(ctx context.Context, userID, txType string, creditsAdded int64, status string) error {
	query := `
		INSERT INTO transactions (user_id, type, credits_added, status)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, userID, txType, creditsAdded, status)
	return err
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]TransactionLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, type, credits_added, status, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var entries []TransactionLogEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE user_id = $1`, userID)
	return err
}

func (r *repository) TotalCreditsAdded(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(credits_added), 0) FROM transactions WHERE type = $1`, TypeRecharge)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return total, err
}
