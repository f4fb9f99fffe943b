package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient builds the real generation client. The timeout is the
// whole-call deadline; a timed-out call surfaces as a provider error.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

type generateResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
}

func (c *HTTPClient) Generate(ctx context.Context, prompt, modelID string) (*Result, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt, Model: modelID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider responded with status %d", resp.StatusCode)
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed provider response: %w", err)
	}

	if payload.ImageURL != "" {
		return &Result{Kind: KindImmediate, ArtifactURL: payload.ImageURL, JobID: payload.ID}, nil
	}
	if payload.ID != "" {
		return &Result{Kind: KindQueued, JobID: payload.ID}, nil
	}

	return nil, ErrNoArtifact
}
