package repository

import (
	"context"

	"teodity/internal/domain/entity"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]*entity.Review, error)
	GetByID(ctx context.Context, id int) (*entity.Review, error)
	// GetByPair returns the non-deleted review for the ordered
	// (reviewer, reviewed) pair, or nil when none exists.
	GetByPair(ctx context.Context, reviewerID, reviewedUserID int) (*entity.Review, error)
	ListByReviewedUser(ctx context.Context, userID int) ([]*entity.Review, error)
	ListByReviewer(ctx context.Context, userID int) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
}
