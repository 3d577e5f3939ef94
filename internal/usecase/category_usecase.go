package usecase

import (
	"context"
	"strings"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Category, 0, len(categories))
	for _, c := range categories {
		if !c.Deleted {
			active = append(active, c)
		}
	}
	return active, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id int) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil || category.Deleted {
		return nil, errors.NotFound("Category not found!", nil)
	}
	return category, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.BadRequest("Category name is required", nil)
	}

	existing, err := uc.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.Deleted {
		return nil, errors.BadRequest("Category with this name already exists", nil)
	}

	category := &entity.Category{Name: name}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
