package goal

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

// Goal is a savings target tracked independently of the transaction ledger.
// CurrentAmount only grows in normal flow; the status invariant is
// COMPLETED exactly when CurrentAmount >= TargetAmount.
// No archival or cancellation state exists yet; COMPLETED is terminal.
type Goal struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline,omitempty"`
	Status        Status          `json:"status"`
}
