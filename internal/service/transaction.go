package service

import (
	"context"
	"time"

	"github.com/simpleproject-dev/finance-app/internal/log"
	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/report"
	"github.com/simpleproject-dev/finance-app/internal/repository"
)

// defaultListLimit matches the page size the web client requested.
const defaultListLimit = 50

// TransactionService wraps transaction CRUD. Reads resolve category and
// source references into display objects through secondary lookups, since
// the store call performs no joins.
type TransactionService struct {
	repo repository.Repository
	log  *log.Logger
}

func NewTransactionService(repo repository.Repository, logger *log.Logger) *TransactionService {
	return &TransactionService{repo: repo, log: logger}
}

// ListFilter narrows a transaction listing.
type ListFilter struct {
	Type       string
	CategoryID string
	Limit      int
}

// List returns the user's transactions, newest first, with display refs
// attached.
func (s *TransactionService) List(ctx context.Context, userID string, filter ListFilter) ([]model.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	transactions, err := s.repo.GetTransactions(ctx, userID, repository.TransactionFilter{
		Type:       filter.Type,
		CategoryID: filter.CategoryID,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, err
	}
	s.attachRefs(ctx, userID, transactions)
	return transactions, nil
}

// Get returns one transaction with display refs, or nil when it does not
// exist for this user.
func (s *TransactionService) Get(ctx context.Context, id, userID string) (*model.Transaction, error) {
	transaction, err := s.repo.GetTransaction(ctx, id, userID)
	if err != nil || transaction == nil {
		return transaction, err
	}
	single := []model.Transaction{*transaction}
	s.attachRefs(ctx, userID, single)
	return &single[0], nil
}

func (s *TransactionService) Create(ctx context.Context, userID string, transaction *model.Transaction) error {
	if err := s.validate(ctx, userID, transaction); err != nil {
		return err
	}

	now := time.Now()
	if transaction.Date.IsZero() {
		transaction.Date = model.DateOf(now)
	}
	transaction.GenerateID()
	transaction.UserID = userID
	transaction.CreatedAt = now
	transaction.Category = nil
	transaction.Source = nil
	return s.repo.CreateTransaction(ctx, transaction)
}

func (s *TransactionService) Update(ctx context.Context, userID, id string, transaction *model.Transaction) error {
	if err := s.validate(ctx, userID, transaction); err != nil {
		return err
	}
	if transaction.Date.IsZero() {
		transaction.Date = model.DateOf(time.Now())
	}
	transaction.ID = id
	transaction.UserID = userID
	transaction.Category = nil
	transaction.Source = nil
	return s.repo.UpdateTransaction(ctx, transaction)
}

func (s *TransactionService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.DeleteTransaction(ctx, id, userID)
}

// Summary totals the user's whole history, fetching each type separately the
// way the web client's summary call did.
func (s *TransactionService) Summary(ctx context.Context, userID string) (report.Summary, error) {
	income, err := s.repo.GetTransactions(ctx, userID, repository.TransactionFilter{Type: model.TypeIncome})
	if err != nil {
		return report.Summary{}, err
	}
	expense, err := s.repo.GetTransactions(ctx, userID, repository.TransactionFilter{Type: model.TypeExpense})
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(append(income, expense...)), nil
}

// validate checks the fields the store will not: amount sign, type, and the
// agreement between the transaction type and its referenced category's type.
// The store itself never enforced the latter; it is a rule here so a new
// income can no longer point at an expense category.
func (s *TransactionService) validate(ctx context.Context, userID string, transaction *model.Transaction) error {
	if !model.ValidCategoryType(transaction.Type) {
		return ErrInvalidType
	}
	if transaction.Amount < 0 {
		return ErrInvalidAmount
	}
	if transaction.CategoryID != nil && *transaction.CategoryID != "" {
		category, err := s.repo.GetCategory(ctx, *transaction.CategoryID, userID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
		if category.Type != transaction.Type {
			return ErrTypeMismatch
		}
	}
	return nil
}

// attachRefs resolves category_id and source_id into display objects. A
// failed lookup logs and leaves the refs nil: the read still succeeds with
// references silently absent.
func (s *TransactionService) attachRefs(ctx context.Context, userID string, transactions []model.Transaction) {
	categoryIDs := make([]string, 0)
	sourceIDs := make([]string, 0)
	seenCategory := make(map[string]bool)
	seenSource := make(map[string]bool)
	for _, t := range transactions {
		if t.CategoryID != nil && *t.CategoryID != "" && !seenCategory[*t.CategoryID] {
			seenCategory[*t.CategoryID] = true
			categoryIDs = append(categoryIDs, *t.CategoryID)
		}
		if t.SourceID != nil && *t.SourceID != "" && !seenSource[*t.SourceID] {
			seenSource[*t.SourceID] = true
			sourceIDs = append(sourceIDs, *t.SourceID)
		}
	}

	categoryRefs := make(map[string]model.DisplayRef)
	if categories, err := s.repo.GetCategoriesByIDs(ctx, userID, categoryIDs); err != nil {
		s.log.Warn("failed to resolve categories for transactions", "error", err)
	} else {
		for _, c := range categories {
			categoryRefs[c.ID] = model.DisplayRef{ID: c.ID, Name: c.Name, Color: c.Color, Type: c.Type}
		}
	}

	sourceRefs := make(map[string]model.DisplayRef)
	if sources, err := s.repo.GetSourcesByIDs(ctx, userID, sourceIDs); err != nil {
		s.log.Warn("failed to resolve sources for transactions", "error", err)
	} else {
		for _, src := range sources {
			sourceRefs[src.ID] = model.DisplayRef{ID: src.ID, Name: src.Name, Color: src.Color, Type: src.Type}
		}
	}

	for i := range transactions {
		if id := transactions[i].CategoryID; id != nil {
			if ref, ok := categoryRefs[*id]; ok {
				transactions[i].Category = &ref
			}
		}
		if id := transactions[i].SourceID; id != nil {
			if ref, ok := sourceRefs[*id]; ok {
				transactions[i].Source = &ref
			}
		}
	}
}
