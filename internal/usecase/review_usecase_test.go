package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teodity/internal/domain/entity"
)

func TestCreateReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)

	review, err := f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID:     buyer.ID,
		ReviewedUserID: seller.ID,
		Grade:          4,
		Comment:        "Fast shipping",
	})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.NotEmpty(t, review.Date)

	stored, err := f.users.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Reviews, review.ID)
	assert.Equal(t, 4.0, stored.AvgRating)
}

func TestCreateReviewGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	stranger := f.seedUser(t, "stranger", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)

	_, err := f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID: buyer.ID, ReviewedUserID: buyer.ID, Grade: 4,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You cannot review yourself!")

	_, err = f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID: buyer.ID, ReviewedUserID: seller.ID, Grade: 6,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Grade must be between 1 and 5!")

	_, err = f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID: stranger.ID, ReviewedUserID: seller.ID, Grade: 4,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You can only review users you had successful transactions with!")

	_, err = f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID: buyer.ID, ReviewedUserID: seller.ID, Grade: 4,
	})
	require.NoError(t, err)

	_, err = f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID: buyer.ID, ReviewedUserID: seller.ID, Grade: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You have already reviewed this user!")
}

func TestAverageRatingRounding(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer1 := f.seedUser(t, "buyer1", entity.RoleBuyer)
	buyer2 := f.seedUser(t, "buyer2", entity.RoleBuyer)
	buyer3 := f.seedUser(t, "buyer3", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer1.ID)
	f.seedSoldDeal(t, seller.ID, buyer2.ID)
	f.seedSoldDeal(t, seller.ID, buyer3.ID)

	for _, rev := range []struct {
		reviewer int
		grade    int
	}{
		{buyer1.ID, 5},
		{buyer2.ID, 4},
		{buyer3.ID, 4},
	} {
		_, err := f.reviewUC.Create(ctx, CreateReviewInput{
			ReviewerID: rev.reviewer, ReviewedUserID: seller.ID, Grade: rev.grade,
		})
		require.NoError(t, err)
	}

	stored, err := f.users.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	// (5+4+4)/3 = 4.333... rounds to one decimal
	assert.Equal(t, 4.3, stored.AvgRating)
}

func TestUpdateReviewRecomputesRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)

	review, err := f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID: buyer.ID, ReviewedUserID: seller.ID, Grade: 2,
	})
	require.NoError(t, err)

	grade := 5
	_, err = f.reviewUC.Update(ctx, review.ID, UpdateReviewInput{Grade: &grade})
	require.NoError(t, err)

	stored, err := f.users.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, stored.AvgRating)
}

func TestDeleteReviewResetsRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seller := f.seedUser(t, "seller1", entity.RoleSeller)
	buyer := f.seedUser(t, "buyer1", entity.RoleBuyer)
	f.seedSoldDeal(t, seller.ID, buyer.ID)

	review, err := f.reviewUC.Create(ctx, CreateReviewInput{
		ReviewerID: buyer.ID, ReviewedUserID: seller.ID, Grade: 4,
	})
	require.NoError(t, err)

	require.NoError(t, f.reviewUC.Delete(ctx, review.ID))

	stored, err := f.users.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.Reviews, review.ID)
	assert.Zero(t, stored.AvgRating)

	visible, err := f.reviewUC.ListForUser(ctx, seller.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)
}
