package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
)

type DashboardStats struct {
	TodayIncome   decimal.Decimal `json:"todayIncome"`
	TodayExpense  decimal.Decimal `json:"todayExpense"`
	DueReceivable decimal.Decimal `json:"dueReceivable"`
	DuePayable    decimal.Decimal `json:"duePayable"`
	Balance       decimal.Decimal `json:"balance"`
	ActiveGoals   int             `json:"activeGoals"`
}

// BuildDashboard derives today's cash movement (dues excluded), the
// outstanding due totals (unsettled dues only), cash balance, and the active
// goal count. today is an ISO date prefix, e.g. "2026-08-31".
func BuildDashboard(txs []ledger.Transaction, goals []goal.Goal, today string) DashboardStats {
	stats := DashboardStats{
		TodayIncome:   decimal.Zero,
		TodayExpense:  decimal.Zero,
		DueReceivable: decimal.Zero,
		DuePayable:    decimal.Zero,
		Balance:       ledger.CalculateBalance(txs),
	}

	for _, t := range txs {
		if strings.HasPrefix(t.Date, today) && !t.IsDue {
			if t.Type == ledger.TypeIncome {
				stats.TodayIncome = stats.TodayIncome.Add(t.Amount)
			} else {
				stats.TodayExpense = stats.TodayExpense.Add(t.Amount)
			}
		}
		if t.IsDue && !t.IsSettled {
			if t.Type == ledger.TypeIncome {
				stats.DueReceivable = stats.DueReceivable.Add(t.Amount)
			} else {
				stats.DuePayable = stats.DuePayable.Add(t.Amount)
			}
		}
	}

	for _, g := range goals {
		if g.Status == goal.StatusActive {
			stats.ActiveGoals++
		}
	}
	return stats
}
