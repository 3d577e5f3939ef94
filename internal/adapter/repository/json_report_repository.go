package repository

import (
	"context"
	"sync"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type jsonReportRepository struct {
	mu      sync.RWMutex
	file    jsonFile
	reports []*entity.Report
	byID    map[int]*entity.Report
}

func NewJSONReportRepository(dataDir string) (repository.ReportRepository, error) {
	r := &jsonReportRepository{
		file: newJSONFile(dataDir, "reports.json"),
		byID: make(map[int]*entity.Report),
	}
	if err := r.file.load(&r.reports); err != nil {
		return nil, errors.Internal("Failed to load reports collection", err)
	}
	for _, rp := range r.reports {
		r.byID[rp.ID] = rp
	}
	return r, nil
}

func (r *jsonReportRepository) List(ctx context.Context) ([]*entity.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Report, 0, len(r.reports))
	for _, rp := range r.reports {
		clone := *rp
		out = append(out, &clone)
	}
	return out, nil
}

func (r *jsonReportRepository) ListPending(ctx context.Context) ([]*entity.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Report
	for _, rp := range r.reports {
		if !rp.Deleted && rp.Status == entity.ReportPending {
			clone := *rp
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *jsonReportRepository) GetByID(ctx context.Context, id int) (*entity.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rp, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Report not found!", nil)
	}
	clone := *rp
	return &clone, nil
}

func (r *jsonReportRepository) GetPendingByPair(ctx context.Context, reporterID, reportedUserID int) (*entity.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rp := range r.reports {
		if !rp.Deleted && rp.Status == entity.ReportPending &&
			rp.ReporterID == reporterID && rp.ReportedUserID == reportedUserID {
			clone := *rp
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *jsonReportRepository) Create(ctx context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, rp := range r.reports {
		if rp.ID > maxID {
			maxID = rp.ID
		}
	}
	report.ID = maxID + 1

	clone := *report
	r.reports = append(r.reports, &clone)
	r.byID[clone.ID] = &clone

	if err := r.file.save(r.reports); err != nil {
		return errors.Internal("Failed to save reports collection", err)
	}
	return nil
}

func (r *jsonReportRepository) Update(ctx context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[report.ID]
	if !ok {
		return errors.NotFound("Report not found!", nil)
	}
	*existing = *report

	if err := r.file.save(r.reports); err != nil {
		return errors.Internal("Failed to save reports collection", err)
	}
	return nil
}
