package recharge

import (
	"context"
	"errors"
	"time"

	"github.com/showprojectts/criativoio/internal/credits"
	"github.com/showprojectts/criativoio/internal/logger"
	"github.com/showprojectts/criativoio/internal/metrics"
	"github.com/showprojectts/criativoio/internal/notifier"
)

var ErrValidation = errors.New("user_id and a positive tokens_to_add are required")

const fallbackAttempts = 3

type Service interface {
	// Recharge applies a confirmed top-up and returns the resulting
	// balance. The credit is considered granted even if the audit log
	// append afterwards fails.
	Recharge(ctx context.Context, userID string, tokens int64) (int64, error)
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]TransactionLogEntry, error)
}

type service struct {
	txRepo      Repository
	creditsRepo credits.Repository
	publisher   notifier.Publisher
}

func NewService(txRepo Repository, creditsRepo credits.Repository, publisher notifier.Publisher) Service {
	return &service{
		txRepo:      txRepo,
		creditsRepo: creditsRepo,
		publisher:   publisher,
	}
}

func (s *service) Recharge(ctx context.Context, userID string, tokens int64) (int64, error) {
	if userID == "" || tokens <= 0 {
		return 0, ErrValidation
	}

	newBalance, err := s.creditsRepo.Credit(ctx, userID, tokens)
	if err != nil {
		logger.Errorf("Atomic credit failed for %s, using fallback: %v", userID, err)

		newBalance, err = s.fallbackCredit(ctx, userID, tokens)
		if err != nil {
			return 0, err
		}
		metrics.RecordRecharge("fallback", tokens)
	} else {
		metrics.RecordRecharge("atomic", tokens)
	}

	// The balance is already updated; a missing audit row is an accepted
	// inconsistency, not a reason to undo the credit.
	if err := s.txRepo.Append(ctx, userID, TypeRecharge, tokens, StatusCompleted); err != nil {
		logger.Errorf("Failed to log recharge transaction for %s: %v", userID, err)
	}

	s.publisher.Publish(ctx, userID, newBalance)

	return newBalance, nil
}

// fallbackCredit is the documented non-atomic read-then-write route.
// Two fallback calls racing for the same user can lose an update; the
// retry loop only guards against transient store errors, not the race.
func (s *service) fallbackCredit(ctx context.Context, userID string, tokens int64) (int64, error) {
	var lastErr error

	for attempt := 1; attempt <= fallbackAttempts; attempt++ {
		current, err := s.creditsRepo.GetBalance(ctx, userID)
		if err != nil {
			lastErr = err
		} else if err = s.creditsRepo.SetBalance(ctx, userID, current+tokens); err != nil {
			lastErr = err
		} else {
			return current + tokens, nil
		}

		logger.Errorf("Fallback credit attempt %d failed for %s: %v", attempt, userID, lastErr)
		if attempt < fallbackAttempts {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
	}

	return 0, lastErr
}

func (s *service) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]TransactionLogEntry, error) {
	return s.txRepo.ListByUser(ctx, userID, limit, offset)
}
