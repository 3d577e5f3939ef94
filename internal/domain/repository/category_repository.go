package repository

import (
	"context"

	"teodity/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id int) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
}
