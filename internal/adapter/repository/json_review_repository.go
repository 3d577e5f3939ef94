package repository

import (
	"context"
	"sync"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type jsonReviewRepository struct {
	mu      sync.RWMutex
	file    jsonFile
	reviews []*entity.Review
	byID    map[int]*entity.Review
}

func NewJSONReviewRepository(dataDir string) (repository.ReviewRepository, error) {
	r := &jsonReviewRepository{
		file: newJSONFile(dataDir, "reviews.json"),
		byID: make(map[int]*entity.Review),
	}
	if err := r.file.load(&r.reviews); err != nil {
		return nil, errors.Internal("Failed to load reviews collection", err)
	}
	for _, rv := range r.reviews {
		r.byID[rv.ID] = rv
	}
	return r, nil
}

func (r *jsonReviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		clone := *rv
		out = append(out, &clone)
	}
	return out, nil
}

func (r *jsonReviewRepository) GetByID(ctx context.Context, id int) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rv, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Review not found!", nil)
	}
	clone := *rv
	return &clone, nil
}

func (r *jsonReviewRepository) GetByPair(ctx context.Context, reviewerID, reviewedUserID int) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rv := range r.reviews {
		if !rv.Deleted && rv.ReviewerID == reviewerID && rv.ReviewedUserID == reviewedUserID {
			clone := *rv
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *jsonReviewRepository) ListByReviewedUser(ctx context.Context, userID int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Review
	for _, rv := range r.reviews {
		if !rv.Deleted && rv.ReviewedUserID == userID {
			clone := *rv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *jsonReviewRepository) ListByReviewer(ctx context.Context, userID int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Review
	for _, rv := range r.reviews {
		if !rv.Deleted && rv.ReviewerID == userID {
			clone := *rv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *jsonReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, rv := range r.reviews {
		if rv.ID > maxID {
			maxID = rv.ID
		}
	}
	review.ID = maxID + 1

	clone := *review
	r.reviews = append(r.reviews, &clone)
	r.byID[clone.ID] = &clone

	if err := r.file.save(r.reviews); err != nil {
		return errors.Internal("Failed to save reviews collection", err)
	}
	return nil
}

func (r *jsonReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[review.ID]
	if !ok {
		return errors.NotFound("Review not found!", nil)
	}
	*existing = *review

	if err := r.file.save(r.reviews); err != nil {
		return errors.Internal("Failed to save reviews collection", err)
	}
	return nil
}
