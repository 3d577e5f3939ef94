package repository

import (
	"context"

	"teodity/internal/domain/entity"
)

type CancellationRepository interface {
	List(ctx context.Context) ([]*entity.Cancellation, error)
	Create(ctx context.Context, cancellation *entity.Cancellation) error
}
