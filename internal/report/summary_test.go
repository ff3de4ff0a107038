package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
	"github.com/bizmoney-app/bizmoney-api/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	txs := []ledger.Transaction{
		{Amount: dec("500"), Type: ledger.TypeIncome, Category: "Sales", Date: "2026-08-01"},
		{Amount: dec("200"), Type: ledger.TypeExpense, Category: "Rent", Date: "2026-08-02"},
		// Unsettled due: counts toward income, not toward cash balance.
		{Amount: dec("300"), Type: ledger.TypeIncome, Category: "Sales", Date: "2026-08-03", IsDue: true, PartyName: "Rahim"},
	}

	s := report.Summarize(txs)
	require.True(t, s.TotalIncome.Equal(dec("800")))
	require.True(t, s.TotalExpense.Equal(dec("200")))
	require.True(t, s.NetProfit.Equal(dec("600")))
	require.True(t, s.Balance.Equal(dec("300")))
}

func TestFilterByMonth(t *testing.T) {
	txs := []ledger.Transaction{
		{Category: "a", Date: "2026-08-05"},
		{Category: "b", Date: "2026-07-31"},
		{Category: "c", Date: "2026-08-20T14:00:00Z"},
		{Category: "d", Date: "not a date"},
	}

	out := report.FilterByMonth(txs, 2026, time.August)
	require.Len(t, out, 2)
	require.Equal(t, "a", out[0].Category)
	require.Equal(t, "c", out[1].Category)
}

func TestExpenseByCategory(t *testing.T) {
	txs := []ledger.Transaction{
		{Amount: dec("100"), Type: ledger.TypeExpense, Category: "Rent"},
		{Amount: dec("50"), Type: ledger.TypeExpense, Category: "Stock"},
		{Amount: dec("25"), Type: ledger.TypeExpense, Category: "Rent"},
		{Amount: dec("999"), Type: ledger.TypeIncome, Category: "Sales"},
	}

	cats := report.ExpenseByCategory(txs)
	require.Len(t, cats, 2)
	require.True(t, cats["Rent"].Equal(dec("125")))
	require.True(t, cats["Stock"].Equal(dec("50")))
}

func TestBuildDashboard(t *testing.T) {
	today := "2026-08-31"
	txs := []ledger.Transaction{
		{Amount: dec("100"), Type: ledger.TypeIncome, Category: "Sales", Date: "2026-08-31"},
		{Amount: dec("40"), Type: ledger.TypeExpense, Category: "Tea", Date: "2026-08-31"},
		// Today's due entry: excluded from today's cash movement.
		{Amount: dec("60"), Type: ledger.TypeIncome, Category: "Sales", Date: "2026-08-31", IsDue: true, PartyName: "Rahim"},
		// Settled due: no longer outstanding.
		{Amount: dec("200"), Type: ledger.TypeExpense, Category: "Stock", Date: "2026-08-01", IsDue: true, PartyName: "Karim", IsSettled: true},
		{Amount: dec("80"), Type: ledger.TypeExpense, Category: "Stock", Date: "2026-08-02", IsDue: true, PartyName: "Karim"},
	}
	goals := []goal.Goal{
		{Title: "a", Status: goal.StatusActive},
		{Title: "b", Status: goal.StatusCompleted},
	}

	stats := report.BuildDashboard(txs, goals, today)
	require.True(t, stats.TodayIncome.Equal(dec("100")))
	require.True(t, stats.TodayExpense.Equal(dec("40")))
	require.True(t, stats.DueReceivable.Equal(dec("60")))
	require.True(t, stats.DuePayable.Equal(dec("80")))
	// 100 - 40 - 200 (settled due expense); unsettled dues contribute nothing.
	require.True(t, stats.Balance.Equal(dec("-140")))
	require.Equal(t, 1, stats.ActiveGoals)
}
