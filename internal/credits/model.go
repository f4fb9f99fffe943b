package credits

import "time"

// UserCredits — one spendable token balance per identity. Rows are
// created implicitly on first credit or generation attempt; a missing
// row reads as balance 0.
type UserCredits struct {
	ProfileID string    `db:"profile_id" json:"profile_id"`
	Balance   int64     `db:"balance" json:"balance"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
