package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// CachedRepository layers a read-through cache over category and source list
// reads. Those two collections back the denormalizing lookups that run on
// every transaction read, while staying small and rarely written. Any write
// to a collection drops every cached list for it. Transactions are never
// cached.
type CachedRepository struct {
	Repository
	cache *ristretto.Cache

	// Cache keys per collection so a write can clear all of them; ristretto
	// has no way to enumerate or delete by prefix.
	categoryKeys keySet
	sourceKeys   keySet
}

type keySet struct {
	sync.Mutex
	m map[string]struct{}
}

func NewCachedRepository(inner Repository) (*CachedRepository, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return &CachedRepository{
		Repository:   inner,
		cache:        cache,
		categoryKeys: keySet{m: make(map[string]struct{})},
		sourceKeys:   keySet{m: make(map[string]struct{})},
	}, nil
}

// Wait blocks until buffered cache writes have been applied. Only tests need
// the determinism.
func (r *CachedRepository) Wait() {
	r.cache.Wait()
}

func (r *CachedRepository) GetCategories(ctx context.Context, userID string, filter CategoryFilter) ([]model.Category, error) {
	key := "categories:" + userID + ":" + filter.Type
	if value, found := r.cache.Get(key); found {
		if categories, ok := value.([]model.Category); ok {
			return categories, nil
		}
	}

	categories, err := r.Repository.GetCategories(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	r.categoryKeys.Lock()
	r.categoryKeys.m[key] = struct{}{}
	r.categoryKeys.Unlock()
	r.cache.Set(key, categories, 1)
	return categories, nil
}

func (r *CachedRepository) GetSources(ctx context.Context, userID string) ([]model.Source, error) {
	key := "sources:" + userID
	if value, found := r.cache.Get(key); found {
		if sources, ok := value.([]model.Source); ok {
			return sources, nil
		}
	}

	sources, err := r.Repository.GetSources(ctx, userID)
	if err != nil {
		return nil, err
	}

	r.sourceKeys.Lock()
	r.sourceKeys.m[key] = struct{}{}
	r.sourceKeys.Unlock()
	r.cache.Set(key, sources, 1)
	return sources, nil
}

func (r *CachedRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := r.Repository.CreateCategory(ctx, category); err != nil {
		return err
	}
	r.clearCategories()
	return nil
}

func (r *CachedRepository) UpdateCategory(ctx context.Context, category *model.Category) error {
	if err := r.Repository.UpdateCategory(ctx, category); err != nil {
		return err
	}
	r.clearCategories()
	return nil
}

func (r *CachedRepository) DeleteCategory(ctx context.Context, id, userID string) error {
	if err := r.Repository.DeleteCategory(ctx, id, userID); err != nil {
		return err
	}
	r.clearCategories()
	return nil
}

func (r *CachedRepository) CreateSource(ctx context.Context, source *model.Source) error {
	if err := r.Repository.CreateSource(ctx, source); err != nil {
		return err
	}
	r.clearSources()
	return nil
}

func (r *CachedRepository) UpdateSource(ctx context.Context, source *model.Source) error {
	if err := r.Repository.UpdateSource(ctx, source); err != nil {
		return err
	}
	r.clearSources()
	return nil
}

func (r *CachedRepository) DeleteSource(ctx context.Context, id, userID string) error {
	if err := r.Repository.DeleteSource(ctx, id, userID); err != nil {
		return err
	}
	r.clearSources()
	return nil
}

func (r *CachedRepository) clearCategories() {
	r.categoryKeys.Lock()
	for key := range r.categoryKeys.m {
		r.cache.Del(key)
	}
	r.categoryKeys.m = make(map[string]struct{})
	r.categoryKeys.Unlock()
}

func (r *CachedRepository) clearSources() {
	r.sourceKeys.Lock()
	for key := range r.sourceKeys.m {
		r.cache.Del(key)
	}
	r.sourceKeys.m = make(map[string]struct{})
	r.sourceKeys.Unlock()
}

var _ Repository = (*CachedRepository)(nil)
