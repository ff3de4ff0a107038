package party

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
)

// Summary is the derived per-party position. Receivable/payable sum every due
// entry naming the party regardless of settlement: this is the
// ledger-of-record view and deliberately differs from the settlement-aware
// cash balance. Not persisted; recomputed from the transaction log on read.
type Summary struct {
	Name                string          `json:"name"`
	TotalReceivable     decimal.Decimal `json:"totalReceivable"`
	TotalPayable        decimal.Decimal `json:"totalPayable"`
	NetBalance          decimal.Decimal `json:"netBalance"`
	LastTransactionDate string          `json:"lastTransactionDate"`
}

// Aggregate folds a flat transaction log into per-party summaries. Entries
// with a blank party name never produce a summary. Due entries feed the
// receivable (INCOME) or payable (EXPENSE) total; non-due entries still count
// toward the party's last activity date. Output is newest activity first,
// stable on first-seen order for ties.
func Aggregate(txs []ledger.Transaction) []Summary {
	index := make(map[string]int)
	summaries := []Summary{}

	for _, t := range txs {
		name := strings.TrimSpace(t.PartyName)
		if name == "" {
			continue
		}

		i, ok := index[name]
		if !ok {
			i = len(summaries)
			index[name] = i
			summaries = append(summaries, Summary{
				Name:                name,
				TotalReceivable:     decimal.Zero,
				TotalPayable:        decimal.Zero,
				LastTransactionDate: t.Date,
			})
		}

		if t.IsDue {
			if t.Type == ledger.TypeIncome {
				summaries[i].TotalReceivable = summaries[i].TotalReceivable.Add(t.Amount)
			} else {
				summaries[i].TotalPayable = summaries[i].TotalPayable.Add(t.Amount)
			}
		}

		if parseDate(t.Date).After(parseDate(summaries[i].LastTransactionDate)) {
			summaries[i].LastTransactionDate = t.Date
		}
	}

	for i := range summaries {
		summaries[i].NetBalance = summaries[i].TotalReceivable.Sub(summaries[i].TotalPayable)
	}

	sort.SliceStable(summaries, func(a, b int) bool {
		return parseDate(summaries[a].LastTransactionDate).After(parseDate(summaries[b].LastTransactionDate))
	})

	return summaries
}

func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
