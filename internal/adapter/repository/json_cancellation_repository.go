package repository

import (
	"context"
	"sync"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type jsonCancellationRepository struct {
	mu            sync.RWMutex
	file          jsonFile
	cancellations []*entity.Cancellation
}

func NewJSONCancellationRepository(dataDir string) (repository.CancellationRepository, error) {
	r := &jsonCancellationRepository{
		file: newJSONFile(dataDir, "cancellations.json"),
	}
	if err := r.file.load(&r.cancellations); err != nil {
		return nil, errors.Internal("Failed to load cancellations collection", err)
	}
	return r, nil
}

func (r *jsonCancellationRepository) List(ctx context.Context) ([]*entity.Cancellation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Cancellation, 0, len(r.cancellations))
	for _, c := range r.cancellations {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *jsonCancellationRepository) Create(ctx context.Context, cancellation *entity.Cancellation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, c := range r.cancellations {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	cancellation.ID = maxID + 1

	clone := *cancellation
	r.cancellations = append(r.cancellations, &clone)

	if err := r.file.save(r.cancellations); err != nil {
		return errors.Internal("Failed to save cancellations collection", err)
	}
	return nil
}
