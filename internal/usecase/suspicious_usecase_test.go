package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teodity/internal/domain/entity"
	"teodity/pkg/timefmt"
)

func (f *fixture) seedCancellations(t *testing.T, buyerID, count int, at time.Time) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, f.cancellations.Create(context.Background(), &entity.Cancellation{
			BuyerID:     buyerID,
			ProductID:   i + 1,
			ProductName: "Some product",
			Date:        timefmt.Format(at),
		}))
	}
}

func TestDetectFlagsFrequentCancellers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	flaky := f.seedUser(t, "flaky", entity.RoleBuyer)
	careful := f.seedUser(t, "careful", entity.RoleBuyer)

	f.seedCancellations(t, flaky.ID, 6, now.AddDate(0, 0, -3))
	f.seedCancellations(t, careful.ID, 5, now.AddDate(0, 0, -3))

	flagged, err := f.suspiciousUC.detectAt(ctx, now)
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, flaky.ID, flagged[0].ID)
	assert.Equal(t, 6, flagged[0].CancellationCount)
	assert.Len(t, flagged[0].RecentCancellations, 6)
	assert.Empty(t, flagged[0].Password)
}

func TestDetectIgnoresOldCancellations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedCancellations(t, buyer.ID, 4, now.AddDate(0, 0, -40))
	f.seedCancellations(t, buyer.ID, 3, now.AddDate(0, 0, -10))

	flagged, err := f.suspiciousUC.detectAt(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestDetectSkipsBlockedUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedCancellations(t, buyer.ID, 8, now.AddDate(0, 0, -1))

	buyer.Blocked = true
	require.NoError(t, f.users.Update(ctx, buyer))

	flagged, err := f.suspiciousUC.detectAt(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, flagged)
}
