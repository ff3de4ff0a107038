package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
)

type FinancialSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	Balance      decimal.Decimal `json:"balance"`
}

// Summarize totals the given transactions by type. Unlike cash balance, the
// income/expense totals are accrual-style: dues count whether settled or not.
// Balance is always computed over the full set passed in.
func Summarize(txs []ledger.Transaction) FinancialSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txs {
		if t.Type == ledger.TypeIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}
	return FinancialSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetProfit:    income.Sub(expense),
		Balance:      ledger.CalculateBalance(txs),
	}
}

// FilterByMonth keeps transactions dated in the given year and month.
// Undated or unparseable entries are dropped from period views.
func FilterByMonth(txs []ledger.Transaction, year int, month time.Month) []ledger.Transaction {
	var out []ledger.Transaction
	for _, t := range txs {
		d, ok := parseDate(t.Date)
		if ok && d.Year() == year && d.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// ExpenseByCategory breaks expense spending down by category label.
func ExpenseByCategory(txs []ledger.Transaction) map[string]decimal.Decimal {
	cats := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != ledger.TypeExpense {
			continue
		}
		cats[t.Category] = cats[t.Category].Add(t.Amount)
	}
	return cats
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
