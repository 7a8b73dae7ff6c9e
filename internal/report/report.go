// Package report holds the aggregation logic: pure functions over
// already-fetched transaction, category and source collections. Nothing here
// performs I/O and nothing returns an error; missing optional fields fall
// back to zero values and placeholders.
package report

import (
	"sort"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// Summary is the aggregate view of a transaction set.
type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpense     float64 `json:"totalExpense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

// Summarize partitions transactions by type and totals each partition.
func Summarize(transactions []model.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			s.TotalIncome += t.Amount.Float64()
		case model.TypeExpense:
			s.TotalExpense += t.Amount.Float64()
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	s.TransactionCount = len(transactions)
	return s
}

// ExpenseRatio is the share of income consumed by expenses. Defined as 0
// when there is no income, so callers never divide by zero.
func ExpenseRatio(s Summary) float64 {
	if s.TotalIncome <= 0 {
		return 0
	}
	return s.TotalExpense / s.TotalIncome
}

// CategoryTotal is the per-category aggregate for tabular breakdowns; chart
// rendering skips entries with a zero total, tables may keep them.
type CategoryTotal struct {
	CategoryID       string  `json:"category_id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Color            string  `json:"color,omitempty"`
	Total            float64 `json:"total"`
	TransactionCount int     `json:"transactionCount"`
	Share            float64 `json:"share"` // percent of the type's overall total
}

// CategoryTotals aggregates transactions per category, preserving the
// category order the store returned. Transactions referencing no category or
// an unknown one are ignored here; the summary still counts them.
func CategoryTotals(transactions []model.Transaction, categories []model.Category) []CategoryTotal {
	totals := make([]CategoryTotal, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		totals[i] = CategoryTotal{
			CategoryID: c.ID,
			Name:       c.Name,
			Type:       c.Type,
			Color:      c.Color,
		}
		index[c.ID] = i
	}

	typeTotals := make(map[string]float64)
	for _, t := range transactions {
		if t.CategoryID == nil {
			continue
		}
		i, ok := index[*t.CategoryID]
		if !ok {
			continue
		}
		totals[i].Total += t.Amount.Float64()
		totals[i].TransactionCount++
		typeTotals[totals[i].Type] += t.Amount.Float64()
	}

	for i := range totals {
		if typeTotal := typeTotals[totals[i].Type]; typeTotal > 0 {
			totals[i].Share = totals[i].Total / typeTotal * 100
		}
	}
	return totals
}

// SourceTotal is the per-source aggregate: income and expense accumulate
// separately so an account's in and out flows stay visible.
type SourceTotal struct {
	SourceID         string  `json:"source_id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Color            string  `json:"color,omitempty"`
	Icon             string  `json:"icon,omitempty"`
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

// SourceBreakdown aggregates transactions per source, preserving source
// order.
func SourceBreakdown(transactions []model.Transaction, sources []model.Source) []SourceTotal {
	totals := make([]SourceTotal, len(sources))
	index := make(map[string]int, len(sources))
	for i, s := range sources {
		totals[i] = SourceTotal{
			SourceID: s.ID,
			Name:     s.Name,
			Type:     s.Type,
			Color:    s.Color,
			Icon:     s.Icon,
		}
		index[s.ID] = i
	}

	for _, t := range transactions {
		if t.SourceID == nil {
			continue
		}
		i, ok := index[*t.SourceID]
		if !ok {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			totals[i].Income += t.Amount.Float64()
		case model.TypeExpense:
			totals[i].Expense += t.Amount.Float64()
		}
		totals[i].TransactionCount++
	}

	for i := range totals {
		totals[i].Balance = totals[i].Income - totals[i].Expense
	}
	return totals
}

// MonthBucket is one month of aggregated income and expense.
type MonthBucket struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// maxMonthBuckets bounds the chart to the most recent year of data.
const maxMonthBuckets = 12

// MonthlyBuckets groups transactions by YYYY-MM, ascending, truncated to the
// most recent 12 buckets. Input order does not matter.
func MonthlyBuckets(transactions []model.Transaction) []MonthBucket {
	income := make(map[string]float64)
	expense := make(map[string]float64)
	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}
		key := t.Date.MonthKey()
		switch t.Type {
		case model.TypeIncome:
			income[key] += t.Amount.Float64()
		case model.TypeExpense:
			expense[key] += t.Amount.Float64()
		}
	}

	keys := make([]string, 0, len(income)+len(expense))
	seen := make(map[string]bool)
	for key := range income {
		keys = append(keys, key)
		seen[key] = true
	}
	for key := range expense {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if len(keys) > maxMonthBuckets {
		keys = keys[len(keys)-maxMonthBuckets:]
	}

	buckets := make([]MonthBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, MonthBucket{
			Month:   key,
			Income:  income[key],
			Expense: expense[key],
			Balance: income[key] - expense[key],
		})
	}
	return buckets
}
