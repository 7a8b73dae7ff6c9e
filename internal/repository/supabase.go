package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// SupabaseRepository talks to the hosted store over PostgREST. The underlying
// query API does not perform relational joins, so referenced rows are fetched
// through the separate in-list lookups.
type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(client *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: client}
}

func (r *SupabaseRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	data, _, err := r.client.From("categories").Insert(category, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	var created []model.Category
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created category: %w", err)
	}
	if len(created) > 0 {
		category.ID = created[0].ID
		category.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *SupabaseRepository) GetCategories(ctx context.Context, userID string, filter CategoryFilter) ([]model.Category, error) {
	query := r.client.From("categories").
		Select("*", "", false).
		Eq("user_id", userID)
	if filter.Type != "" {
		query = query.Eq("type", filter.Type)
	}
	query = query.Order("type.desc,name.asc", nil)

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}
	return categories, nil
}

func (r *SupabaseRepository) GetCategory(ctx context.Context, id, userID string) (*model.Category, error) {
	data, _, err := r.client.From("categories").
		Select("*", "", false).
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}
	if len(categories) == 0 {
		return nil, nil
	}
	return &categories[0], nil
}

func (r *SupabaseRepository) GetCategoriesByIDs(ctx context.Context, userID string, ids []string) ([]model.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	data, _, err := r.client.From("categories").
		Select("*", "", false).
		Eq("user_id", userID).
		In("id", ids).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by ids: %w", err)
	}

	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}
	return categories, nil
}

func (r *SupabaseRepository) UpdateCategory(ctx context.Context, category *model.Category) error {
	data, _, err := r.client.From("categories").
		Update(category, "", "").
		Eq("id", category.ID).
		Eq("user_id", category.UserID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	var updated []model.Category
	if len(data) > 0 && json.Unmarshal(data, &updated) == nil && len(updated) > 0 {
		*category = updated[0]
	}
	return nil
}

func (r *SupabaseRepository) DeleteCategory(ctx context.Context, id, userID string) error {
	_, _, err := r.client.From("categories").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *SupabaseRepository) CreateSource(ctx context.Context, source *model.Source) error {
	data, _, err := r.client.From("sources").Insert(source, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}

	var created []model.Source
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created source: %w", err)
	}
	if len(created) > 0 {
		source.ID = created[0].ID
		source.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *SupabaseRepository) GetSources(ctx context.Context, userID string) ([]model.Source, error) {
	data, _, err := r.client.From("sources").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("name.asc", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}

	var sources []model.Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse sources: %w", err)
	}
	return sources, nil
}

func (r *SupabaseRepository) GetSource(ctx context.Context, id, userID string) (*model.Source, error) {
	data, _, err := r.client.From("sources").
		Select("*", "", false).
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	var sources []model.Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	if len(sources) == 0 {
		return nil, nil
	}
	return &sources[0], nil
}

func (r *SupabaseRepository) GetSourcesByIDs(ctx context.Context, userID string, ids []string) ([]model.Source, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	data, _, err := r.client.From("sources").
		Select("*", "", false).
		Eq("user_id", userID).
		In("id", ids).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get sources by ids: %w", err)
	}

	var sources []model.Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse sources: %w", err)
	}
	return sources, nil
}

func (r *SupabaseRepository) UpdateSource(ctx context.Context, source *model.Source) error {
	data, _, err := r.client.From("sources").
		Update(source, "", "").
		Eq("id", source.ID).
		Eq("user_id", source.UserID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update source: %w", err)
	}

	var updated []model.Source
	if len(data) > 0 && json.Unmarshal(data, &updated) == nil && len(updated) > 0 {
		*source = updated[0]
	}
	return nil
}

func (r *SupabaseRepository) DeleteSource(ctx context.Context, id, userID string) error {
	_, _, err := r.client.From("sources").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}
	return nil
}

func (r *SupabaseRepository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	data, _, err := r.client.From("transactions").Insert(transaction, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	var created []model.Transaction
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created transaction: %w", err)
	}
	if len(created) > 0 {
		transaction.ID = created[0].ID
		transaction.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *SupabaseRepository) GetTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.Transaction, error) {
	query := r.client.From("transactions").
		Select("*", "", false).
		Eq("user_id", userID)

	if filter.StartDate != nil {
		query = query.Gte("date", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		query = query.Lte("date", filter.EndDate.Format("2006-01-02"))
	}
	if filter.Type != "" {
		query = query.Eq("type", filter.Type)
	}
	if filter.CategoryID != "" {
		query = query.Eq("category_id", filter.CategoryID)
	}

	query = query.Order("date.desc", nil)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit, "")
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transactions: %w", err)
	}
	return transactions, nil
}

func (r *SupabaseRepository) GetTransaction(ctx context.Context, id, userID string) (*model.Transaction, error) {
	data, _, err := r.client.From("transactions").
		Select("*", "", false).
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}
	if len(transactions) == 0 {
		return nil, nil
	}
	return &transactions[0], nil
}

func (r *SupabaseRepository) UpdateTransaction(ctx context.Context, transaction *model.Transaction) error {
	data, _, err := r.client.From("transactions").
		Update(transaction, "", "").
		Eq("id", transaction.ID).
		Eq("user_id", transaction.UserID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	var updated []model.Transaction
	if len(data) > 0 && json.Unmarshal(data, &updated) == nil && len(updated) > 0 {
		*transaction = updated[0]
	}
	return nil
}

func (r *SupabaseRepository) DeleteTransaction(ctx context.Context, id, userID string) error {
	_, _, err := r.client.From("transactions").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

var _ Repository = (*SupabaseRepository)(nil)
