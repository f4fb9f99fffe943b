package credits

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrInsufficientCredits = errors.New("insufficient credits")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Debit is the single mutual-exclusion point of the whole pipeline: the
// floor check and the decrement happen in one server-side statement, so
// concurrent spends for the same user serialize on the row and can never
// drive the balance negative.
func (r *repository) Debit(ctx context.Context, userID string, cost int64) (int64, error) {
	query := `
		UPDATE user_credits
		SET balance = balance - $2, updated_at = NOW()
		WHERE profile_id = $1 AND balance >= $2
		RETURNING balance
	`

	var newBalance int64
	err := r.db.GetContext(ctx, &newBalance, query, userID, cost)
	if errors.Is(err, sql.ErrNoRows) {
		// No row at all reads as balance 0, which is just as insufficient.
		return 0, ErrInsufficientCredits
	}
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (r *repository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	query := `
		INSERT INTO user_credits (profile_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (profile_id)
		DO UPDATE SET balance = user_credits.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var newBalance int64
	err := r.db.GetContext(ctx, &newBalance, query, userID, amount)
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (r *repository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance,
		`SELECT balance FROM user_credits WHERE profile_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (r *repository) SetBalance(ctx context.Context, userID string, balance int64) error {
	query := `
		INSERT INTO user_credits (profile_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (profile_id)
		DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, userID, balance)
	return err
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_credits WHERE profile_id = $1`, userID)
	return err
}
