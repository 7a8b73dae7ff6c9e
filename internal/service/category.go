package service

import (
	"context"
	"strings"
	"time"

	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/repository"
)

// CategoryService wraps category CRUD: writes are stamped with the calling
// user id, reads are filtered on it.
type CategoryService struct {
	repo repository.Repository
}

func NewCategoryService(repo repository.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns the user's categories, income first then by name, optionally
// narrowed to one type.
func (s *CategoryService) List(ctx context.Context, userID, categoryType string) ([]model.Category, error) {
	if categoryType != "" && !model.ValidCategoryType(categoryType) {
		return nil, ErrInvalidType
	}
	return s.repo.GetCategories(ctx, userID, repository.CategoryFilter{Type: categoryType})
}

// Get returns one category or nil when it does not exist for this user.
func (s *CategoryService) Get(ctx context.Context, id, userID string) (*model.Category, error) {
	return s.repo.GetCategory(ctx, id, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID string, category *model.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	category.ID = ""
	category.UserID = userID
	category.CreatedAt = time.Now()
	return s.repo.CreateCategory(ctx, category)
}

func (s *CategoryService) Update(ctx context.Context, userID, id string, category *model.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	category.ID = id
	category.UserID = userID
	return s.repo.UpdateCategory(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.DeleteCategory(ctx, id, userID)
}

func validateCategory(category *model.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrNameRequired
	}
	if !model.ValidCategoryType(category.Type) {
		return ErrInvalidType
	}
	return nil
}
