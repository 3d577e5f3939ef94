package repository

import (
	"context"

	"teodity/internal/domain/entity"
)

type ReportRepository interface {
	List(ctx context.Context) ([]*entity.Report, error)
	ListPending(ctx context.Context) ([]*entity.Report, error)
	GetByID(ctx context.Context, id int) (*entity.Report, error)
	// GetPendingByPair returns the non-deleted Pending report for the
	// ordered (reporter, reported) pair, or nil when none exists.
	GetPendingByPair(ctx context.Context, reporterID, reportedUserID int) (*entity.Report, error)
	Create(ctx context.Context, report *entity.Report) error
	Update(ctx context.Context, report *entity.Report) error
}
