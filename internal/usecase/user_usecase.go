package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/internal/domain/service"
	"teodity/pkg/errors"
	"teodity/pkg/logger"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	fileStore   service.FileStore
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	fileStore service.FileStore,
) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
		fileStore:   fileStore,
	}
}

func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if !u.Blocked {
			active = append(active, u.Sanitized())
		}
	}
	return active, nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil || user.Blocked {
		return nil, errors.NotFound("User not found!", nil)
	}
	return user.Sanitized(), nil
}

type UpdateProfileInput struct {
	Name        *string
	Surname     *string
	Birthday    *string
	Description *string
	Number      *string
	Image       string // stored filename of a freshly uploaded picture
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, id int, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil || user.Blocked {
		return nil, errors.NotFound("User not found!", nil)
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Surname != nil {
		user.Surname = strings.TrimSpace(*input.Surname)
	}
	if input.Birthday != nil {
		user.Birthday = strings.TrimSpace(*input.Birthday)
	}
	if input.Description != nil {
		user.Description = strings.TrimSpace(*input.Description)
	}
	if input.Number != nil {
		user.Number = strings.TrimSpace(*input.Number)
	}

	if input.Image != "" {
		oldImage := user.Image
		user.Image = input.Image
		if oldImage != "" && oldImage != "default.png" {
			if err := uc.fileStore.Remove(oldImage); err != nil {
				logger.Error("Failed to delete old profile image %s: %v", oldImage, err)
			}
		}
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

type UpdateCredentialsInput struct {
	CurrentPassword string
	Username        string
	Mail            string
	NewPassword     *string
}

func (uc *UserUseCase) UpdateCredentials(ctx context.Context, id int, input UpdateCredentialsInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil || user.Blocked {
		return nil, errors.NotFound("User not found!", nil)
	}

	if input.CurrentPassword == "" {
		return nil, errors.BadRequest("Current password is required to change credentials!", nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)) != nil {
		return nil, errors.Unauthorized("Current password is incorrect!", nil)
	}

	if input.Username != "" && input.Username != user.Username {
		username := strings.TrimSpace(input.Username)
		if other, err := uc.userRepo.GetByUsername(ctx, username); err != nil {
			return nil, err
		} else if other != nil && !other.Blocked && other.ID != id {
			return nil, errors.BadRequest("Username already exists!", nil)
		}
		user.Username = username
	}

	if input.Mail != "" && input.Mail != user.Mail {
		mail := strings.TrimSpace(input.Mail)
		if other, err := uc.userRepo.GetByMail(ctx, mail); err != nil {
			return nil, err
		} else if other != nil && !other.Blocked && other.ID != id {
			return nil, errors.BadRequest("Email already exists!", nil)
		}
		user.Mail = mail
	}

	if input.NewPassword != nil {
		if strings.TrimSpace(*input.NewPassword) == "" {
			return nil, errors.BadRequest("New password cannot be empty!", nil)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Internal("Failed to hash password", err)
		}
		user.Password = string(hash)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// Block soft-deletes a user: the account is flagged blocked and every
// listing they sell is soft-deleted.
func (uc *UserUseCase) Block(ctx context.Context, id int) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.Seller == id && !p.Deleted {
			p.Deleted = true
			if err := uc.productRepo.Update(ctx, p); err != nil {
				return err
			}
		}
	}

	user.Blocked = true
	return uc.userRepo.Update(ctx, user)
}
