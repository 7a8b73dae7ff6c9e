package service

import (
	"context"
	"strings"
	"time"

	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/repository"
)

// SourceService wraps payment-source CRUD with the same ownership shape as
// categories.
type SourceService struct {
	repo repository.Repository
}

func NewSourceService(repo repository.Repository) *SourceService {
	return &SourceService{repo: repo}
}

// List returns the user's sources ordered by name.
func (s *SourceService) List(ctx context.Context, userID string) ([]model.Source, error) {
	return s.repo.GetSources(ctx, userID)
}

// Get returns one source or nil when it does not exist for this user.
func (s *SourceService) Get(ctx context.Context, id, userID string) (*model.Source, error) {
	return s.repo.GetSource(ctx, id, userID)
}

func (s *SourceService) Create(ctx context.Context, userID string, source *model.Source) error {
	if err := validateSource(source); err != nil {
		return err
	}
	source.ID = ""
	source.UserID = userID
	source.CreatedAt = time.Now()
	return s.repo.CreateSource(ctx, source)
}

func (s *SourceService) Update(ctx context.Context, userID, id string, source *model.Source) error {
	if err := validateSource(source); err != nil {
		return err
	}
	source.ID = id
	source.UserID = userID
	return s.repo.UpdateSource(ctx, source)
}

func (s *SourceService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.DeleteSource(ctx, id, userID)
}

func validateSource(source *model.Source) error {
	source.Name = strings.TrimSpace(source.Name)
	if source.Name == "" {
		return ErrNameRequired
	}
	if !model.ValidSourceType(source.Type) {
		return ErrInvalidType
	}
	return nil
}
