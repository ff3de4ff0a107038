package goal

import (
	"github.com/shopspring/decimal"
)

type CreateGoalDTO struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     string          `json:"deadline"`
}

type AddProgressDTO struct {
	Amount decimal.Decimal `json:"amount"`
}

// ListGoalsResponse carries the reconciled collection plus the goals whose
// completion was detected during this load, so the UI can celebrate each goal
// exactly once.
type ListGoalsResponse struct {
	Goals          []Goal `json:"goals"`
	NewlyCompleted []Goal `json:"newlyCompleted,omitempty"`
}
