package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simpleproject-dev/finance-app/internal/log"
	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/report"
	"github.com/simpleproject-dev/finance-app/internal/repository"
)

// dashboardFetchLimit matches the page size the dashboard screen loaded.
const dashboardFetchLimit = 100

// Dashboard is one screen's worth of data. Parts that failed to load are
// reported in Errors while the rest still renders.
type Dashboard struct {
	Summary         report.Summary         `json:"summary"`
	ExpenseRatio    float64                `json:"expenseRatio"`
	Transactions    []model.Transaction    `json:"transactions"`
	Categories      []model.Category       `json:"categories"`
	Sources         []model.Source         `json:"sources"`
	CategoryTotals  []report.CategoryTotal `json:"categoryTotals"`
	SourceBreakdown []report.SourceTotal   `json:"sourceBreakdown"`
	Errors          []string               `json:"errors,omitempty"`
}

// DashboardService assembles the dashboard from one parallel batch of
// fetches.
type DashboardService struct {
	repo         repository.Repository
	transactions *TransactionService
	log          *log.Logger
}

func NewDashboardService(repo repository.Repository, transactions *TransactionService, logger *log.Logger) *DashboardService {
	return &DashboardService{repo: repo, transactions: transactions, log: logger}
}

// Fetch loads transactions, categories and sources concurrently, filters the
// transactions to the selected period and aggregates. Each fetch failure is
// collected instead of aborting the batch, so one broken collection does not
// blank the screen.
func (s *DashboardService) Fetch(ctx context.Context, userID string, period report.Period, now time.Time) *Dashboard {
	var (
		transactions []model.Transaction
		categories   []model.Category
		sources      []model.Source
		errTx        error
		errCat       error
		errSrc       error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		transactions, errTx = s.repo.GetTransactions(gctx, userID, repository.TransactionFilter{Limit: dashboardFetchLimit})
		return nil
	})
	g.Go(func() error {
		categories, errCat = s.repo.GetCategories(gctx, userID, repository.CategoryFilter{})
		return nil
	})
	g.Go(func() error {
		sources, errSrc = s.repo.GetSources(gctx, userID)
		return nil
	})
	_ = g.Wait()

	dashboard := &Dashboard{}
	if errTx != nil {
		s.log.Warn("dashboard transactions fetch failed", "error", errTx)
		dashboard.Errors = append(dashboard.Errors, "transactions: "+errTx.Error())
	}
	if errCat != nil {
		s.log.Warn("dashboard categories fetch failed", "error", errCat)
		dashboard.Errors = append(dashboard.Errors, "categories: "+errCat.Error())
	}
	if errSrc != nil {
		s.log.Warn("dashboard sources fetch failed", "error", errSrc)
		dashboard.Errors = append(dashboard.Errors, "sources: "+errSrc.Error())
	}

	transactions = report.FilterByPeriod(transactions, period, now, model.Date{}, model.Date{})
	s.transactions.attachRefs(ctx, userID, transactions)

	dashboard.Transactions = transactions
	dashboard.Categories = categories
	dashboard.Sources = sources
	dashboard.Summary = report.Summarize(transactions)
	dashboard.ExpenseRatio = report.ExpenseRatio(dashboard.Summary)
	dashboard.CategoryTotals = report.CategoryTotals(transactions, categories)
	dashboard.SourceBreakdown = report.SourceBreakdown(transactions, sources)
	return dashboard
}
