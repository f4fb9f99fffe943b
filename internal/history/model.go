package history

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// GenerationRecord is written once per generation that actually produced
// something from the provider, and never updated afterwards. Its insert
// is the gatekeeper: no record, no charge, no artifact shown.
type GenerationRecord struct {
	ID          string    `db:"id" json:"id"`
	ProfileID   string    `db:"profile_id" json:"profile_id"`
	Prompt      string    `db:"prompt" json:"prompt"`
	ModelID     string    `db:"model_id" json:"model_id"`
	CreditsCost int64     `db:"credits_cost" json:"credits_cost"`
	ResultURL   *string   `db:"result_url" json:"result_url,omitempty"`
	JobID       *string   `db:"job_id" json:"job_id,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
