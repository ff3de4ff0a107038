package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTransactionDTO struct {
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Note      string          `json:"note"`
	Date      string          `json:"date"`
	IsDue     bool            `json:"isDue"`
	PartyName string          `json:"partyName"`
	DueDate   string          `json:"dueDate"`
}

// UpdateTransactionDTO carries the editable fields. Type, id, userId and
// timestamp are immutable after creation.
type UpdateTransactionDTO struct {
	Amount    *decimal.Decimal `json:"amount"`
	Category  *string          `json:"category"`
	Note      *string          `json:"note"`
	Date      *string          `json:"date"`
	IsDue     *bool            `json:"isDue"`
	PartyName *string          `json:"partyName"`
	DueDate   *string          `json:"dueDate"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type TransactionResponse struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	Date      string          `json:"date"`
	Timestamp int64           `json:"timestamp"`
	IsDue     bool            `json:"isDue"`
	PartyName string          `json:"partyName,omitempty"`
	DueDate   string          `json:"dueDate,omitempty"`
	IsSettled bool            `json:"isSettled"`
}

func toResponse(t *Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		Amount:    t.Amount,
		Type:      t.Type,
		Category:  t.Category,
		Note:      t.Note,
		Date:      t.Date,
		Timestamp: t.Timestamp,
		IsDue:     t.IsDue,
		PartyName: t.PartyName,
		DueDate:   t.DueDate,
		IsSettled: t.IsSettled,
	}
}
