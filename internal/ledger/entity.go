package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Transaction is one ledger entry. A due ("baki") entry records credit
// extended to or by a named party; it only counts toward cash balance once
// settled. Field names in JSON match the v1.1 backup format.
type Transaction struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"userId"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	// Date is the calendar date of the transaction (ISO 8601), chosen by the
	// user; Timestamp is the creation instant in epoch milliseconds and is the
	// canonical recency sort key.
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	IsDue     bool   `json:"isDue"`
	PartyName string `json:"partyName,omitempty"`
	DueDate   string `json:"dueDate,omitempty"`
	IsSettled bool   `json:"isSettled"`
}
