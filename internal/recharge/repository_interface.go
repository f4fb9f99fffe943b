package recharge

import "context"

type Repository interface {
	Append(ctx context.Context, userID, txType string, creditsAdded int64, status string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]TransactionLogEntry, error)
	DeleteByUser(ctx context.Context, userID string) error
	TotalCreditsAdded(ctx context.Context) (int64, error)
}
