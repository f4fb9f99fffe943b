package account

import (
	"context"
	"errors"

	"github.com/showprojectts/criativoio/internal/auth"
	"github.com/showprojectts/criativoio/internal/credits"
	"github.com/showprojectts/criativoio/internal/history"
	"github.com/showprojectts/criativoio/internal/logger"
	"github.com/showprojectts/criativoio/internal/recharge"
	"github.com/showprojectts/criativoio/internal/user"
)

var ErrRevocationFailed = errors.New("failed to revoke identity")

type Service interface {
	// Purge removes every row tied to the identity and then revokes the
	// identity itself. Data deletions are best-effort; revocation is the
	// binding step — a live identity with no data is worse than orphaned
	// rows. Safe to re-invoke on an already or partially purged account.
	Purge(ctx context.Context, userID string) error
}

type service struct {
	historyRepo history.Repository
	creditsRepo credits.Repository
	txRepo      recharge.Repository
	userRepo    user.Repository
	revoker     auth.Revoker
}

func NewService(
	historyRepo history.Repository,
	creditsRepo credits.Repository,
	txRepo recharge.Repository,
	userRepo user.Repository,
	revoker auth.Revoker,
) Service {
	return &service{
		historyRepo: historyRepo,
		creditsRepo: creditsRepo,
		txRepo:      txRepo,
		userRepo:    userRepo,
		revoker:     revoker,
	}
}

func (s *service) Purge(ctx context.Context, userID string) error {
	logger.Infof("Starting account purge for user %s", userID)

	if err := s.historyRepo.DeleteByUser(ctx, userID); err != nil {
		logger.Errorf("Purge: failed to delete generations for %s: %v", userID, err)
	}

	if err := s.creditsRepo.DeleteByUser(ctx, userID); err != nil {
		logger.Errorf("Purge: failed to delete credits for %s: %v", userID, err)
	}

	if err := s.txRepo.DeleteByUser(ctx, userID); err != nil {
		logger.Errorf("Purge: failed to delete transactions for %s: %v", userID, err)
	}

	// Binding step. Deleting a user that is already gone succeeds; only
	// a store error on a still-existing identity fails the purge.
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		logger.Errorf("Purge: failed to delete identity %s: %v", userID, err)
		return ErrRevocationFailed
	}

	if err := s.revoker.Revoke(ctx, userID); err != nil {
		logger.Errorf("Purge: failed to denylist identity %s: %v", userID, err)
		return ErrRevocationFailed
	}

	logger.Infof("Account purge completed for user %s", userID)
	return nil
}
