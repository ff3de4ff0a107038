package ledger

import "github.com/shopspring/decimal"

// CalculateBalance folds a transaction set into cash-on-hand: unsettled dues
// contribute nothing (no cash moved yet), everything else adds or subtracts
// its amount by type. A settled due behaves like a normal cash transaction
// regardless of when it was settled. The result is signed; it can go negative.
func CalculateBalance(txs []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		if t.IsDue && !t.IsSettled {
			continue
		}
		if t.Type == TypeIncome {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// PartyNames returns the distinct non-empty party names in first-seen order,
// across due and non-due transactions alike. Drives the party autocomplete.
func PartyNames(txs []Transaction) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, t := range txs {
		if t.PartyName == "" || seen[t.PartyName] {
			continue
		}
		seen[t.PartyName] = true
		names = append(names, t.PartyName)
	}
	return names
}
