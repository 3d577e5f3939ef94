package repository

import (
	"context"

	"teodity/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByMail(ctx context.Context, mail string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
