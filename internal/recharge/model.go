package recharge

import "time"

const (
	TypeRecharge    = "RECHARGE"
	StatusCompleted = "COMPLETED"
)

// TransactionLogEntry is the append-only audit trail of recharges. It is
// not authoritative for the balance: a failed append is logged and left
// out of sync rather than rolled back.
type TransactionLogEntry struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Type         string    `db:"type" json:"type"`
	CreditsAdded int64     `db:"credits_added" json:"credits_added"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type RechargeRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	TokensToAdd int64  `json:"tokens_to_add" binding:"required,gt=0"`
}
