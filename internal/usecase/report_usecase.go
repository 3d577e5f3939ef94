package usecase

import (
	"context"
	"time"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/internal/domain/service"
	"teodity/pkg/errors"
	"teodity/pkg/timefmt"
)

type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	notifier    service.Notifier
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	notifier service.Notifier,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

type CreateReportInput struct {
	ReporterID     int
	ReportedUserID int
	Reason         string
}

func (uc *ReportUseCase) Create(ctx context.Context, input CreateReportInput) (*entity.Report, error) {
	if input.ReporterID == 0 || input.ReportedUserID == 0 || input.Reason == "" {
		return nil, errors.BadRequest("Reporter, reported user and reason are required!", nil)
	}
	if input.ReporterID == input.ReportedUserID {
		return nil, errors.BadRequest("You cannot report yourself!", nil)
	}

	reporter, err := uc.userRepo.GetByID(ctx, input.ReporterID)
	if err != nil || reporter.Blocked {
		return nil, errors.NotFound("User not found or blocked!", nil)
	}
	reported, err := uc.userRepo.GetByID(ctx, input.ReportedUserID)
	if err != nil || reported.Blocked {
		return nil, errors.NotFound("User not found or blocked!", nil)
	}

	ok, err := hasSoldTransaction(ctx, uc.productRepo, input.ReporterID, input.ReportedUserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.BadRequest("You can only report users you had transactions with!", nil)
	}

	pending, err := uc.reportRepo.GetPendingByPair(ctx, input.ReporterID, input.ReportedUserID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, errors.BadRequest("You already have a pending report for this user!", nil)
	}

	report := &entity.Report{
		ReporterID:     input.ReporterID,
		ReportedUserID: input.ReportedUserID,
		Reason:         input.Reason,
		Status:         entity.ReportPending,
		Date:           timefmt.Format(time.Now()),
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (uc *ReportUseCase) List(ctx context.Context) ([]*entity.Report, error) {
	reports, err := uc.reportRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Report, 0, len(reports))
	for _, rp := range reports {
		if !rp.Deleted {
			active = append(active, rp)
		}
	}
	return active, nil
}

func (uc *ReportUseCase) ListPending(ctx context.Context) ([]*entity.Report, error) {
	reports, err := uc.reportRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []*entity.Report{}
	}
	return reports, nil
}

func (uc *ReportUseCase) GetByID(ctx context.Context, id int) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil || report.Deleted {
		return nil, errors.NotFound("Report not found!", nil)
	}
	return report, nil
}

// Approve blocks the reported user, retires their listings and notifies
// both parties. Only pending reports can be approved.
func (uc *ReportUseCase) Approve(ctx context.Context, id int) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil || report.Deleted {
		return nil, errors.NotFound("Report not found!", nil)
	}
	if report.Status != entity.ReportPending {
		return nil, errors.BadRequest("Only pending reports can be resolved!", nil)
	}

	reported, err := uc.userRepo.GetByID(ctx, report.ReportedUserID)
	if err != nil {
		return nil, err
	}

	reported.Blocked = true
	if err := uc.userRepo.Update(ctx, reported); err != nil {
		return nil, err
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.Seller == reported.ID && !p.Deleted {
			p.Deleted = true
			if err := uc.productRepo.Update(ctx, p); err != nil {
				return nil, err
			}
		}
	}

	report.Status = entity.ReportApproved
	if err := uc.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	uc.notifier.AccountBlocked(reported.Mail, reported.Username)
	if reporter, err := uc.userRepo.GetByID(ctx, report.ReporterID); err == nil {
		uc.notifier.ReportApproved(reporter.Mail, reported.Username)
	}

	return report, nil
}

func (uc *ReportUseCase) Reject(ctx context.Context, id int, adminComment string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil || report.Deleted {
		return nil, errors.NotFound("Report not found!", nil)
	}
	if report.Status != entity.ReportPending {
		return nil, errors.BadRequest("Only pending reports can be resolved!", nil)
	}
	if adminComment == "" {
		return nil, errors.BadRequest("Admin comment is required when rejecting a report!", nil)
	}

	report.Status = entity.ReportRejected
	report.AdminComment = adminComment
	if err := uc.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	reported, rerr := uc.userRepo.GetByID(ctx, report.ReportedUserID)
	if reporter, err := uc.userRepo.GetByID(ctx, report.ReporterID); err == nil {
		reportedName := ""
		if rerr == nil {
			reportedName = reported.Username
		}
		uc.notifier.ReportRejected(reporter.Mail, reportedName, adminComment)
	}

	return report, nil
}

func (uc *ReportUseCase) Delete(ctx context.Context, id int) error {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	report.Deleted = true
	return uc.reportRepo.Update(ctx, report)
}
