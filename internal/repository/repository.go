package repository

import (
	"context"
	"errors"
	"time"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// ErrNotConfigured is returned by every write when the hosted store
// credentials are missing and the application runs against the disabled stub.
var ErrNotConfigured = errors.New("supabase not configured")

// Repository is the access layer over the hosted store. Every call is scoped
// by the owning user id; Get methods return (nil, nil) when no row matches.
type Repository interface {
	// Categories
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategories(ctx context.Context, userID string, filter CategoryFilter) ([]model.Category, error)
	GetCategory(ctx context.Context, id, userID string) (*model.Category, error)
	GetCategoriesByIDs(ctx context.Context, userID string, ids []string) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id, userID string) error

	// Sources
	CreateSource(ctx context.Context, source *model.Source) error
	GetSources(ctx context.Context, userID string) ([]model.Source, error)
	GetSource(ctx context.Context, id, userID string) (*model.Source, error)
	GetSourcesByIDs(ctx context.Context, userID string, ids []string) ([]model.Source, error)
	UpdateSource(ctx context.Context, source *model.Source) error
	DeleteSource(ctx context.Context, id, userID string) error

	// Transactions
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id, userID string) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction *model.Transaction) error
	DeleteTransaction(ctx context.Context, id, userID string) error
}

type CategoryFilter struct {
	Type string // "income", "expense" or empty for both
}

type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       string // "expense" or "income"
	CategoryID string
	Limit      int
}
