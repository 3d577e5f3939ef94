package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teodity/internal/domain/entity"
)

func TestCreateReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)

	report, err := f.reportUC.Create(ctx, CreateReportInput{
		ReporterID:     buyer.ID,
		ReportedUserID: seller.ID,
		Reason:         "Item never arrived",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportPending, report.Status)
	assert.NotEmpty(t, report.Date)

	_, err = f.reportUC.Create(ctx, CreateReportInput{
		ReporterID:     buyer.ID,
		ReportedUserID: seller.ID,
		Reason:         "Still nothing",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You already have a pending report for this user!")
}

func TestCreateReportGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	stranger := f.seedUser(t, "stranger", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)

	_, err := f.reportUC.Create(ctx, CreateReportInput{
		ReporterID: buyer.ID, ReportedUserID: buyer.ID, Reason: "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You cannot report yourself!")

	_, err = f.reportUC.Create(ctx, CreateReportInput{
		ReporterID: stranger.ID, ReportedUserID: seller.ID, Reason: "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You can only report users you had transactions with!")
}

func TestApproveReportBlocksUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)
	listing := f.seedProduct(t, &entity.Product{
		Name: "Open listing", Price: 100, Type: entity.TypeFixed, Seller: seller.ID,
	})

	report, err := f.reportUC.Create(ctx, CreateReportInput{
		ReporterID: buyer.ID, ReportedUserID: seller.ID, Reason: "Scam",
	})
	require.NoError(t, err)

	approved, err := f.reportUC.Approve(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportApproved, approved.Status)

	blocked, err := f.users.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.True(t, blocked.Blocked)

	gone, err := f.products.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.True(t, gone.Deleted)

	assert.Equal(t, 1, f.notifier.count("blocked"))
	assert.Equal(t, 1, f.notifier.count("report-approved"))

	// resolved reports cannot be resolved again
	_, err = f.reportUC.Approve(ctx, report.ID)
	require.Error(t, err)
}

func TestRejectReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)

	report, err := f.reportUC.Create(ctx, CreateReportInput{
		ReporterID: buyer.ID, ReportedUserID: seller.ID, Reason: "Rude messages",
	})
	require.NoError(t, err)

	_, err = f.reportUC.Reject(ctx, report.ID, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Admin comment is required when rejecting a report!")

	rejected, err := f.reportUC.Reject(ctx, report.ID, "No evidence found")
	require.NoError(t, err)
	assert.Equal(t, entity.ReportRejected, rejected.Status)
	assert.Equal(t, "No evidence found", rejected.AdminComment)
	assert.Equal(t, 1, f.notifier.count("report-rejected"))

	reported, err := f.users.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.False(t, reported.Blocked)
}
