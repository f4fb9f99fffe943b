package provider

import (
	"context"
	"fmt"
	"time"
)

// MockClient stands in when no provider API key is configured, mirroring
// the demo behavior of the hosted product.
type MockClient struct {
	Delay time.Duration
}

func NewMockClient() *MockClient {
	return &MockClient{Delay: 2 * time.Second}
}

func (c *MockClient) Generate(ctx context.Context, prompt, modelID string) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.Delay):
	}

	return &Result{
		Kind:        KindImmediate,
		ArtifactURL: "https://criativoio.com/storage/mock-image.png",
		JobID:       fmt.Sprintf("mock_job_%d", time.Now().UnixMilli()),
	}, nil
}
