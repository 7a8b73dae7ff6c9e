package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleproject-dev/finance-app/internal/log"
	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/report"
	"github.com/simpleproject-dev/finance-app/internal/repository"
)

func newDashboardService(repo repository.Repository) *DashboardService {
	logger := log.New("test")
	return NewDashboardService(repo, NewTransactionService(repo, logger), logger)
}

func TestDashboardFetch(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := newDashboardService(repo)
	ctx := context.Background()

	catID := seedCategory(t, repo, testUser, "Makanan", model.TypeExpense)
	source := model.Source{Name: "Dompet", Type: model.SourceCash, UserID: testUser}
	require.NoError(t, repo.CreateSource(ctx, &source))

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateTransaction(ctx, &model.Transaction{
		UserID: testUser, Type: model.TypeIncome, Amount: 1000,
		Date: model.NewDate(2024, time.June, 1), SourceID: &source.ID,
	}))
	require.NoError(t, repo.CreateTransaction(ctx, &model.Transaction{
		UserID: testUser, Type: model.TypeExpense, Amount: 400,
		Date: model.NewDate(2024, time.June, 10), CategoryID: &catID, SourceID: &source.ID,
	}))
	// outside the current month, must not count
	require.NoError(t, repo.CreateTransaction(ctx, &model.Transaction{
		UserID: testUser, Type: model.TypeExpense, Amount: 9999,
		Date: model.NewDate(2024, time.April, 1),
	}))

	dashboard := svc.Fetch(ctx, testUser, report.PeriodCurrentMonth, now)

	assert.Empty(t, dashboard.Errors)
	assert.Len(t, dashboard.Transactions, 2)
	assert.Equal(t, 1000.0, dashboard.Summary.TotalIncome)
	assert.Equal(t, 400.0, dashboard.Summary.TotalExpense)
	assert.Equal(t, 600.0, dashboard.Summary.Balance)
	assert.InDelta(t, 0.4, dashboard.ExpenseRatio, 1e-9)
	assert.Len(t, dashboard.Categories, 1)
	assert.Len(t, dashboard.Sources, 1)

	require.Len(t, dashboard.CategoryTotals, 1)
	assert.Equal(t, 400.0, dashboard.CategoryTotals[0].Total)

	require.Len(t, dashboard.SourceBreakdown, 1)
	assert.Equal(t, 600.0, dashboard.SourceBreakdown[0].Balance)

	// display refs resolved on the filtered transactions
	require.NotNil(t, dashboard.Transactions[0].Source)
	assert.Equal(t, "Dompet", dashboard.Transactions[0].Source.Name)
}

func TestDashboardPartialFailure(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := newDashboardService(repo)
	ctx := context.Background()

	require.NoError(t, repo.CreateTransaction(ctx, &model.Transaction{
		UserID: testUser, Type: model.TypeIncome, Amount: 100,
		Date: model.DateOf(time.Now()),
	}))

	repo.CategoriesErr = assert.AnError
	dashboard := svc.Fetch(ctx, testUser, report.PeriodCurrentMonth, time.Now())

	require.Len(t, dashboard.Errors, 1)
	assert.Contains(t, dashboard.Errors[0], "categories")
	// the parts that loaded still render
	assert.Len(t, dashboard.Transactions, 1)
	assert.Equal(t, 100.0, dashboard.Summary.TotalIncome)
}
