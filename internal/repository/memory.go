package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// MemoryRepository keeps all three collections in process memory. It backs
// the service and handler tests and mirrors the hosted store's observable
// behavior: server-stamped ids, user scoping, date-descending transaction
// order and (nil, nil) for missing rows.
type MemoryRepository struct {
	mu           sync.Mutex
	categories   map[string]model.Category
	sources      map[string]model.Source
	transactions map[string]model.Transaction

	// Optional fault injection for partial-failure tests.
	CategoriesErr   error
	SourcesErr      error
	TransactionsErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		categories:   make(map[string]model.Category),
		sources:      make(map[string]model.Source),
		transactions: make(map[string]model.Transaction),
	}
}

func (r *MemoryRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	if r.CategoriesErr != nil {
		return r.CategoriesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *MemoryRepository) GetCategories(ctx context.Context, userID string, filter CategoryFilter) ([]model.Category, error) {
	if r.CategoriesErr != nil {
		return nil, r.CategoriesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Category
	for _, c := range r.categories {
		if c.UserID != userID {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type > out[j].Type // type desc, income first
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *MemoryRepository) GetCategory(ctx context.Context, id, userID string) (*model.Category, error) {
	if r.CategoriesErr != nil {
		return nil, r.CategoriesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryRepository) GetCategoriesByIDs(ctx context.Context, userID string, ids []string) ([]model.Category, error) {
	if r.CategoriesErr != nil {
		return nil, r.CategoriesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok && c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemoryRepository) UpdateCategory(ctx context.Context, category *model.Category) error {
	if r.CategoriesErr != nil {
		return r.CategoriesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return nil
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *MemoryRepository) DeleteCategory(ctx context.Context, id, userID string) error {
	if r.CategoriesErr != nil {
		return r.CategoriesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok && c.UserID == userID {
		delete(r.categories, id)
	}
	return nil
}

func (r *MemoryRepository) CreateSource(ctx context.Context, source *model.Source) error {
	if r.SourcesErr != nil {
		return r.SourcesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if source.ID == "" {
		source.ID = uuid.New().String()
	}
	r.sources[source.ID] = *source
	return nil
}

func (r *MemoryRepository) GetSources(ctx context.Context, userID string) ([]model.Source, error) {
	if r.SourcesErr != nil {
		return nil, r.SourcesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Source
	for _, s := range r.sources {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *MemoryRepository) GetSource(ctx context.Context, id, userID string) (*model.Source, error) {
	if r.SourcesErr != nil {
		return nil, r.SourcesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sources[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	return &s, nil
}

func (r *MemoryRepository) GetSourcesByIDs(ctx context.Context, userID string, ids []string) ([]model.Source, error) {
	if r.SourcesErr != nil {
		return nil, r.SourcesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Source
	for _, id := range ids {
		if s, ok := r.sources[id]; ok && s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemoryRepository) UpdateSource(ctx context.Context, source *model.Source) error {
	if r.SourcesErr != nil {
		return r.SourcesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.sources[source.ID]
	if !ok || existing.UserID != source.UserID {
		return nil
	}
	r.sources[source.ID] = *source
	return nil
}

func (r *MemoryRepository) DeleteSource(ctx context.Context, id, userID string) error {
	if r.SourcesErr != nil {
		return r.SourcesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sources[id]; ok && s.UserID == userID {
		delete(r.sources, id)
	}
	return nil
}

func (r *MemoryRepository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	if r.TransactionsErr != nil {
		return r.TransactionsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	stored := *transaction
	stored.Category = nil
	stored.Source = nil
	r.transactions[transaction.ID] = stored
	return nil
}

func (r *MemoryRepository) GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, error) {
	if r.TransactionsErr != nil {
		return nil, r.TransactionsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Transaction
	for _, t := range r.transactions {
		if t.UserID != userID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.CategoryID != "" && (t.CategoryID == nil || *t.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.StartDate != nil && t.Date.Time.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.Time.After(*filter.EndDate) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Time.After(out[j].Date.Time)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MemoryRepository) GetTransaction(ctx context.Context, id, userID string) (*model.Transaction, error) {
	if r.TransactionsErr != nil {
		return nil, r.TransactionsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return &t, nil
}

func (r *MemoryRepository) UpdateTransaction(ctx context.Context, transaction *model.Transaction) error {
	if r.TransactionsErr != nil {
		return r.TransactionsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.transactions[transaction.ID]
	if !ok || existing.UserID != transaction.UserID {
		return nil
	}
	stored := *transaction
	stored.Category = nil
	stored.Source = nil
	r.transactions[transaction.ID] = stored
	return nil
}

func (r *MemoryRepository) DeleteTransaction(ctx context.Context, id, userID string) error {
	if r.TransactionsErr != nil {
		return r.TransactionsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.transactions[id]; ok && t.UserID == userID {
		delete(r.transactions, id)
	}
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
