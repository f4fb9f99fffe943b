package credits

import "context"

type Repository interface {
	// Debit atomically subtracts cost, failing with ErrInsufficientCredits
	// when the balance would go below zero. Returns the new balance.
	Debit(ctx context.Context, userID string, cost int64) (int64, error)
	// Credit atomically adds amount, creating the row if needed.
	// Returns the new balance.
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
	// SetBalance writes an absolute balance. Only the recharge fallback
	// path may use it; it is a plain last-write-wins upsert.
	SetBalance(ctx context.Context, userID string, balance int64) error
	DeleteByUser(ctx context.Context, userID string) error
}
