package generation

import (
	"context"
	"errors"

	"github.com/showprojectts/criativoio/internal/credits"
	"github.com/showprojectts/criativoio/internal/history"
	"github.com/showprojectts/criativoio/internal/logger"
	"github.com/showprojectts/criativoio/internal/metrics"
	"github.com/showprojectts/criativoio/internal/notifier"
	"github.com/showprojectts/criativoio/internal/provider"
)

var (
	ErrValidation          = errors.New("prompt, model_id and a positive credits_cost are required")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrProvider            = errors.New("generation provider failed")
	ErrRecording           = errors.New("failed to record generation")
)

type Request struct {
	Prompt      string
	ModelID     string
	CreditsCost int64
}

// Outcome of a delivered generation. Debited is false in the documented
// exception case: the record exists and the artifact is returned even
// though the balance was not decremented.
type Outcome struct {
	Record  *history.GenerationRecord
	Result  *provider.Result
	Debited bool
	Balance int64
}

type Service interface {
	Generate(ctx context.Context, userID string, req Request) (*Outcome, error)
}

type service struct {
	creditsRepo credits.Repository
	historyRepo history.Repository
	provider    provider.Client
	publisher   notifier.Publisher
}

func NewService(
	creditsRepo credits.Repository,
	historyRepo history.Repository,
	providerClient provider.Client,
	publisher notifier.Publisher,
) Service {
	return &service{
		creditsRepo: creditsRepo,
		historyRepo: historyRepo,
		provider:    providerClient,
		publisher:   publisher,
	}
}

// Generate runs one request through the pipeline: validate, balance
// precheck, provider call, gatekeeper record insert, debit, deliver.
// Ordering matters: nothing before the record insert may charge, and
// nothing after it may withhold the artifact.
func (s *service) Generate(ctx context.Context, userID string, req Request) (*Outcome, error) {
	if req.Prompt == "" || req.ModelID == "" || req.CreditsCost <= 0 {
		return nil, ErrValidation
	}

	// Optimistic precheck: rejects obviously broke users before the
	// expensive provider call. Not authoritative — the atomic debit
	// below is the only over-spend guard.
	balance, err := s.creditsRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance < req.CreditsCost {
		return nil, ErrInsufficientCredits
	}

	result, err := s.provider.Generate(ctx, req.Prompt, req.ModelID)
	if err != nil {
		logger.Errorf("Provider call failed for %s: %v", userID, err)
		metrics.RecordGeneration("provider_failed", "")
		return nil, ErrProvider
	}

	record := &history.GenerationRecord{
		ProfileID:   userID,
		Prompt:      req.Prompt,
		ModelID:     req.ModelID,
		CreditsCost: req.CreditsCost,
		Status:      history.StatusCompleted,
	}
	switch result.Kind {
	case provider.KindImmediate:
		record.ResultURL = &result.ArtifactURL
		if result.JobID != "" {
			record.JobID = &result.JobID
		}
	case provider.KindQueued:
		record.JobID = &result.JobID
		record.Status = history.StatusPending
	}

	// Gatekeeper insert. If it fails the artifact is discarded and no
	// debit happens: better an uncharged lost artifact than a charge
	// with no record of what it paid for.
	inserted, err := s.historyRepo.Insert(ctx, record)
	if err != nil {
		logger.Errorf("Failed to record generation for %s: %v", userID, err)
		metrics.RecordGeneration("recording_failed", string(result.Kind))
		return nil, ErrRecording
	}

	outcome := &Outcome{Record: inserted, Result: result}

	newBalance, err := s.creditsRepo.Debit(ctx, userID, req.CreditsCost)
	if err != nil {
		// The artifact is generated and recorded, so it is delivered
		// anyway; the stale balance is an accepted, monitored gap. A
		// concurrent spend exhausting the balance between precheck and
		// here lands in the same bucket.
		logger.Errorf("Debit of %d failed for %s after recording %s: %v",
			req.CreditsCost, userID, inserted.ID, err)
		metrics.RecordDebitFailure()
		metrics.RecordGeneration("delivered_undebited", string(result.Kind))

		outcome.Balance = balance
		return outcome, nil
	}

	metrics.RecordDebit(req.CreditsCost)
	metrics.RecordGeneration("delivered", string(result.Kind))

	outcome.Debited = true
	outcome.Balance = newBalance
	s.publisher.Publish(ctx, userID, newBalance)

	return outcome, nil
}
