package pyft

import (
	"errors"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// GroupStats aggregates one group of entry amounts. A group with Count 0 has
// no meaningful aggregates and must render as "N/A"; the zero values here
// are placeholders, not results.
type GroupStats struct {
	Count  int
	Mean   Amount
	Median Amount
	Std    float64 // population standard deviation, in dollars
	Total  Amount
}

// Empty reports whether the group has no amounts.
func (g GroupStats) Empty() bool { return g.Count == 0 }

// Summary is the statistical overview of one account's entries, split into
// credits (amount > 0), debits (amount < 0) and all amounts together.
type Summary struct {
	Account string
	Credits GroupStats
	Debits  GroupStats
	All     GroupStats
}

// GrandTotal is the sum of all entry amounts of the account.
func (s *Summary) GrandTotal() Amount { return s.All.Total }

// Summarize computes the statistical summary of an account. The account must
// exist; an account without entries yields a summary where every group is
// empty.
func (l *Ledger) Summarize(account string) (*Summary, error) {
	if _, err := l.store.Account(account); errors.Is(err, ErrNotFound) {
		return nil, &ReferenceError{Kind: "account", Name: account}
	} else if err != nil {
		return nil, err
	}
	amounts, err := l.store.EntryAmounts(account)
	if err != nil {
		return nil, err
	}

	var credits, debits []Amount
	for _, a := range amounts {
		if a.IsPositive() {
			credits = append(credits, a)
		} else if a.IsNegative() {
			debits = append(debits, a)
		}
	}
	return &Summary{
		Account: account,
		Credits: groupStats(credits),
		Debits:  groupStats(debits),
		All:     groupStats(amounts),
	}, nil
}

func groupStats(amounts []Amount) GroupStats {
	if len(amounts) == 0 {
		return GroupStats{}
	}
	total := Amount{}
	values := make([]float64, len(amounts))
	for i, a := range amounts {
		total = total.Add(a)
		values[i] = a.Float64()
	}
	return GroupStats{
		Count:  len(amounts),
		Mean:   Amount{value: decimal.NewFromFloat(mean(values))},
		Median: Amount{value: decimal.NewFromFloat(median(values))},
		Std:    stddev(values),
		Total:  total,
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func stddev(values []float64) float64 {
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}
