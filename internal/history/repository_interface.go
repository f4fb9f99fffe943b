package history

import "context"

type Repository interface {
	Insert(ctx context.Context, record *GenerationRecord) (*GenerationRecord, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]GenerationRecord, error)
	DeleteByUser(ctx context.Context, userID string) error
	Count(ctx context.Context) (int, error)
	TotalCreditsSpent(ctx context.Context) (int64, error)
}
