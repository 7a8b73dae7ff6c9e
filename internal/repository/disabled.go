package repository

import (
	"context"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// DisabledRepository stands in when the store URL or anon key is missing.
// Reads resolve to empty results and writes fail with ErrNotConfigured, so
// the application degrades instead of crashing at startup.
type DisabledRepository struct{}

func NewDisabledRepository() *DisabledRepository {
	return &DisabledRepository{}
}

func (r *DisabledRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) GetCategories(ctx context.Context, userID string, filter CategoryFilter) ([]model.Category, error) {
	return nil, nil
}

func (r *DisabledRepository) GetCategory(ctx context.Context, id, userID string) (*model.Category, error) {
	return nil, nil
}

func (r *DisabledRepository) GetCategoriesByIDs(ctx context.Context, userID string, ids []string) ([]model.Category, error) {
	return nil, nil
}

func (r *DisabledRepository) UpdateCategory(ctx context.Context, category *model.Category) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) DeleteCategory(ctx context.Context, id, userID string) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) CreateSource(ctx context.Context, source *model.Source) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) GetSources(ctx context.Context, userID string) ([]model.Source, error) {
	return nil, nil
}

func (r *DisabledRepository) GetSource(ctx context.Context, id, userID string) (*model.Source, error) {
	return nil, nil
}

func (r *DisabledRepository) GetSourcesByIDs(ctx context.Context, userID string, ids []string) ([]model.Source, error) {
	return nil, nil
}

func (r *DisabledRepository) UpdateSource(ctx context.Context, source *model.Source) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) DeleteSource(ctx context.Context, id, userID string) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, error) {
	return nil, nil
}

func (r *DisabledRepository) GetTransaction(ctx context.Context, id, userID string) (*model.Transaction, error) {
	return nil, nil
}

func (r *DisabledRepository) UpdateTransaction(ctx context.Context, transaction *model.Transaction) error {
	return ErrNotConfigured
}

func (r *DisabledRepository) DeleteTransaction(ctx context.Context, id, userID string) error {
	return ErrNotConfigured
}

var _ Repository = (*DisabledRepository)(nil)
