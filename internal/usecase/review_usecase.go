package usecase

import (
	"context"
	"math"
	"time"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
	"teodity/pkg/timefmt"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

type CreateReviewInput struct {
	ReviewerID     int
	ReviewedUserID int
	Grade          int
	Comment        string
}

func (uc *ReviewUseCase) Create(ctx context.Context, input CreateReviewInput) (*entity.Review, error) {
	if input.ReviewerID == 0 || input.ReviewedUserID == 0 || input.Grade == 0 {
		return nil, errors.BadRequest("Reviewer, reviewed user and grade are required!", nil)
	}
	if input.ReviewerID == input.ReviewedUserID {
		return nil, errors.BadRequest("You cannot review yourself!", nil)
	}

	reviewer, err := uc.userRepo.GetByID(ctx, input.ReviewerID)
	if err != nil || reviewer.Blocked {
		return nil, errors.NotFound("User not found or blocked!", nil)
	}
	reviewed, err := uc.userRepo.GetByID(ctx, input.ReviewedUserID)
	if err != nil || reviewed.Blocked {
		return nil, errors.NotFound("User not found or blocked!", nil)
	}

	if input.Grade < 1 || input.Grade > 5 {
		return nil, errors.BadRequest("Grade must be between 1 and 5!", nil)
	}

	ok, err := hasSoldTransaction(ctx, uc.productRepo, input.ReviewerID, input.ReviewedUserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.BadRequest("You can only review users you had successful transactions with!", nil)
	}

	existing, err := uc.reviewRepo.GetByPair(ctx, input.ReviewerID, input.ReviewedUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("You have already reviewed this user!", nil)
	}

	review := &entity.Review{
		ReviewerID:     input.ReviewerID,
		ReviewedUserID: input.ReviewedUserID,
		Grade:          input.Grade,
		Comment:        input.Comment,
		Date:           timefmt.Format(time.Now()),
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	reviewed.Reviews = append(reviewed.Reviews, review.ID)
	if err := uc.recomputeRating(ctx, reviewed); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) List(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Review, 0, len(reviews))
	for _, r := range reviews {
		if !r.Deleted {
			active = append(active, r)
		}
	}
	return active, nil
}

func (uc *ReviewUseCase) ListForUser(ctx context.Context, userID int) ([]*entity.Review, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user.Blocked {
		return nil, errors.NotFound("User not found!", nil)
	}
	reviews, err := uc.reviewRepo.ListByReviewedUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}
	return reviews, nil
}

func (uc *ReviewUseCase) ListByReviewer(ctx context.Context, userID int) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByReviewer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}
	return reviews, nil
}

type UpdateReviewInput struct {
	Grade   *int
	Comment *string
}

func (uc *ReviewUseCase) Update(ctx context.Context, id int, input UpdateReviewInput) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil || review.Deleted {
		return nil, errors.NotFound("Review not found!", nil)
	}

	oldGrade := review.Grade
	if input.Grade != nil {
		review.Grade = *input.Grade
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if review.Grade < 1 || review.Grade > 5 {
		return nil, errors.BadRequest("Grade must be between 1 and 5!", nil)
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if oldGrade != review.Grade {
		if reviewed, err := uc.userRepo.GetByID(ctx, review.ReviewedUserID); err == nil {
			if err := uc.recomputeRating(ctx, reviewed); err != nil {
				return nil, err
			}
		}
	}

	return review, nil
}

func (uc *ReviewUseCase) Delete(ctx context.Context, id int) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	review.Deleted = true
	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return err
	}

	if reviewed, err := uc.userRepo.GetByID(ctx, review.ReviewedUserID); err == nil {
		reviewed.RemoveReview(id)
		if err := uc.recomputeRating(ctx, reviewed); err != nil {
			return err
		}
	}
	return nil
}

// recomputeRating refreshes the subject's average from every non-deleted
// review, rounded to one decimal, and persists the user.
func (uc *ReviewUseCase) recomputeRating(ctx context.Context, user *entity.User) error {
	reviews, err := uc.reviewRepo.ListByReviewedUser(ctx, user.ID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		user.AvgRating = 0
	} else {
		sum := 0
		for _, r := range reviews {
			sum += r.Grade
		}
		avg := float64(sum) / float64(len(reviews))
		user.AvgRating = math.Round(avg*10) / 10
	}

	return uc.userRepo.Update(ctx, user)
}
