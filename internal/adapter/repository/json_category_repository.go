package repository

import (
	"context"
	"strings"
	"sync"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type jsonCategoryRepository struct {
	mu         sync.RWMutex
	file       jsonFile
	categories []*entity.Category
	byID       map[int]*entity.Category
}

func NewJSONCategoryRepository(dataDir string) (repository.CategoryRepository, error) {
	r := &jsonCategoryRepository{
		file: newJSONFile(dataDir, "categories.json"),
		byID: make(map[int]*entity.Category),
	}
	if err := r.file.load(&r.categories); err != nil {
		return nil, errors.Internal("Failed to load categories collection", err)
	}
	for _, c := range r.categories {
		r.byID[c.ID] = c
	}
	return r, nil
}

func (r *jsonCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *jsonCategoryRepository) GetByID(ctx context.Context, id int) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Category not found!", nil)
	}
	clone := *c
	return &clone, nil
}

func (r *jsonCategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *jsonCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, c := range r.categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	category.ID = maxID + 1

	clone := *category
	r.categories = append(r.categories, &clone)
	r.byID[clone.ID] = &clone

	if err := r.file.save(r.categories); err != nil {
		return errors.Internal("Failed to save categories collection", err)
	}
	return nil
}
