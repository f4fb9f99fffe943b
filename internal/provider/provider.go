package provider

import (
	"context"
	"errors"
)

var ErrNoArtifact = errors.New("provider returned no artifact and no job id")

type Kind string

const (
	// KindImmediate — the provider returned a finished artifact.
	KindImmediate Kind = "immediate"
	// KindQueued — the provider accepted the job; the artifact resolves later.
	KindQueued Kind = "queued"
)

// Result is the tagged outcome of a provider call: exactly one of
// ArtifactURL (Immediate) or JobID (Queued) is meaningful.
type Result struct {
	Kind        Kind
	ArtifactURL string
	JobID       string
}

type Client interface {
	Generate(ctx context.Context, prompt, modelID string) (*Result, error)
}
