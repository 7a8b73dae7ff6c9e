package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

func ptr(s string) *string { return &s }

func tx(txType string, amount float64, date model.Date) model.Transaction {
	return model.Transaction{Type: txType, Amount: model.Amount(amount), Date: date}
}

func TestSummarize(t *testing.T) {
	june := model.NewDate(2024, time.June, 10)
	s := Summarize([]model.Transaction{
		tx(model.TypeIncome, 1000, june),
		tx(model.TypeExpense, 400, june),
	})
	assert.Equal(t, 1000.0, s.TotalIncome)
	assert.Equal(t, 400.0, s.TotalExpense)
	assert.Equal(t, 600.0, s.Balance)
	assert.Equal(t, 2, s.TransactionCount)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
}

func TestBalanceIdentity(t *testing.T) {
	june := model.NewDate(2024, time.June, 1)
	s := Summarize([]model.Transaction{
		tx(model.TypeIncome, 150.25, june),
		tx(model.TypeIncome, 49.75, june),
		tx(model.TypeExpense, 80, june),
		tx(model.TypeExpense, 20.5, june),
	})
	assert.InDelta(t, s.TotalIncome-s.TotalExpense, s.Balance, 1e-9)
}

func TestExpenseRatio(t *testing.T) {
	assert.Equal(t, 0.4, ExpenseRatio(Summary{TotalIncome: 1000, TotalExpense: 400}))
	assert.Equal(t, 0.0, ExpenseRatio(Summary{TotalIncome: 0, TotalExpense: 400}))
	assert.Equal(t, 0.0, ExpenseRatio(Summary{TotalIncome: -10, TotalExpense: 400}))
}

func TestResolveLastMonth(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	r, bounded := Resolve(PeriodLastMonth, now, model.Date{}, model.Date{})
	assert.True(t, bounded)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 31, r.End.Day())
	assert.Equal(t, time.May, r.End.Month())
}

func TestResolveCurrentMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	r, bounded := Resolve(PeriodLastMonth, now, model.Date{}, model.Date{})
	assert.True(t, bounded)
	assert.Equal(t, 2023, r.Start.Year())
	assert.Equal(t, time.December, r.Start.Month())
}

func TestResolveUnbounded(t *testing.T) {
	now := time.Now()
	_, bounded := Resolve(PeriodAll, now, model.Date{}, model.Date{})
	assert.False(t, bounded)

	_, bounded = Resolve(Period("bogus"), now, model.Date{}, model.Date{})
	assert.False(t, bounded)

	// custom without both ends imposes no bounds
	_, bounded = Resolve(PeriodCustom, now, model.NewDate(2024, time.May, 1), model.Date{})
	assert.False(t, bounded)
}

func TestResolveCustom(t *testing.T) {
	now := time.Now()
	r, bounded := Resolve(PeriodCustom, now, model.NewDate(2024, time.May, 1), model.NewDate(2024, time.May, 31))
	assert.True(t, bounded)
	assert.True(t, r.Contains(time.Date(2024, time.May, 31, 18, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFilterByPeriod(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		tx(model.TypeExpense, 10, model.NewDate(2024, time.May, 20)),
		tx(model.TypeExpense, 20, model.NewDate(2024, time.June, 1)),
		tx(model.TypeExpense, 30, model.Date{}), // undated rows are dropped by bounded filters
	}

	lastMonth := FilterByPeriod(transactions, PeriodLastMonth, now, model.Date{}, model.Date{})
	assert.Len(t, lastMonth, 1)
	assert.Equal(t, 10.0, lastMonth[0].Amount.Float64())

	all := FilterByPeriod(transactions, PeriodAll, now, model.Date{}, model.Date{})
	assert.Len(t, all, 3)
}

func TestCategoryTotals(t *testing.T) {
	categories := []model.Category{
		{ID: "c1", Name: "Gaji", Type: model.TypeIncome},
		{ID: "c2", Name: "Makanan", Type: model.TypeExpense},
		{ID: "c3", Name: "Transportasi", Type: model.TypeExpense},
	}
	june := model.NewDate(2024, time.June, 1)
	transactions := []model.Transaction{
		{Type: model.TypeIncome, Amount: 1000, Date: june, CategoryID: ptr("c1")},
		{Type: model.TypeExpense, Amount: 300, Date: june, CategoryID: ptr("c2")},
		{Type: model.TypeExpense, Amount: 100, Date: june, CategoryID: ptr("c3")},
		{Type: model.TypeExpense, Amount: 50, Date: june},                      // uncategorized
		{Type: model.TypeExpense, Amount: 25, Date: june, CategoryID: ptr("missing")}, // unknown ref
	}

	totals := CategoryTotals(transactions, categories)
	assert.Len(t, totals, 3)
	assert.Equal(t, "Gaji", totals[0].Name)
	assert.Equal(t, 1000.0, totals[0].Total)
	assert.InDelta(t, 100.0, totals[0].Share, 1e-9)
	assert.Equal(t, 300.0, totals[1].Total)
	assert.InDelta(t, 75.0, totals[1].Share, 1e-9)
	assert.InDelta(t, 25.0, totals[2].Share, 1e-9)
}

func TestSourceBreakdown(t *testing.T) {
	sources := []model.Source{
		{ID: "s1", Name: "Dompet", Type: model.SourceCash},
		{ID: "s2", Name: "Rekening", Type: model.SourceBank},
	}
	june := model.NewDate(2024, time.June, 1)
	transactions := []model.Transaction{
		{Type: model.TypeIncome, Amount: 500, Date: june, SourceID: ptr("s1")},
		{Type: model.TypeExpense, Amount: 200, Date: june, SourceID: ptr("s1")},
		{Type: model.TypeExpense, Amount: 50, Date: june, SourceID: ptr("s2")},
	}

	totals := SourceBreakdown(transactions, sources)
	assert.Len(t, totals, 2)
	assert.Equal(t, 500.0, totals[0].Income)
	assert.Equal(t, 200.0, totals[0].Expense)
	assert.Equal(t, 300.0, totals[0].Balance)
	assert.Equal(t, 2, totals[0].TransactionCount)
	assert.Equal(t, -50.0, totals[1].Balance)
}

func TestMonthlyBuckets(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TypeExpense, 100, model.NewDate(2024, time.June, 5)),
		tx(model.TypeIncome, 900, model.NewDate(2024, time.May, 1)),
		tx(model.TypeIncome, 1000, model.NewDate(2024, time.June, 20)),
		tx(model.TypeExpense, 50, model.NewDate(2024, time.May, 30)),
	}

	buckets := MonthlyBuckets(transactions)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "2024-05", buckets[0].Month)
	assert.Equal(t, 850.0, buckets[0].Balance)
	assert.Equal(t, "2024-06", buckets[1].Month)
	assert.Equal(t, 1000.0, buckets[1].Income)
	assert.Equal(t, 100.0, buckets[1].Expense)

	// input order does not matter
	reversed := []model.Transaction{transactions[3], transactions[2], transactions[1], transactions[0]}
	assert.Equal(t, buckets, MonthlyBuckets(reversed))
}

func TestMonthlyBucketsKeepLastTwelve(t *testing.T) {
	var transactions []model.Transaction
	for m := 1; m <= 15; m++ {
		date := model.DateOf(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, m-1, 0))
		transactions = append(transactions, tx(model.TypeExpense, float64(m), date))
	}

	buckets := MonthlyBuckets(transactions)
	assert.Len(t, buckets, 12)
	assert.Equal(t, "2023-04", buckets[0].Month)
	assert.Equal(t, "2024-03", buckets[11].Month)
}
