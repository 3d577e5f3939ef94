package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	jwtExpiry int64
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtSecret string, jwtExpiry int64) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: jwtExpiry,
	}
}

type RegisterInput struct {
	Name            string
	Surname         string
	Username        string
	Mail            string
	Number          string
	Password        string
	ConfirmPassword string
	Birthday        string
	Description     string
	Role            string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if input.Name == "" || input.Surname == "" || input.Username == "" ||
		input.Mail == "" || input.Password == "" || input.Role == "" {
		return nil, errors.BadRequest("All required fields must be filled!", nil)
	}
	if input.ConfirmPassword == "" || input.Password != input.ConfirmPassword {
		return nil, errors.BadRequest("Password confirmation does not match!", nil)
	}

	// Administrators are seeded directly in the collection, never
	// self-registered.
	if input.Role != entity.RoleBuyer && input.Role != entity.RoleSeller {
		return nil, errors.BadRequest("Role must be Buyer or Seller!", nil)
	}

	username := strings.TrimSpace(input.Username)
	mail := strings.TrimSpace(input.Mail)

	if existing, err := uc.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.BadRequest("Username already exists!", nil)
	}
	if existing, err := uc.userRepo.GetByMail(ctx, mail); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.BadRequest("Email already exists!", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Name:        strings.TrimSpace(input.Name),
		Surname:     strings.TrimSpace(input.Surname),
		Username:    username,
		Mail:        mail,
		Number:      strings.TrimSpace(input.Number),
		Password:    string(hash),
		Birthday:    input.Birthday,
		Image:       "default.png",
		Description: strings.TrimSpace(input.Description),
		Role:        input.Role,
		Products:    []int{},
		Reviews:     []int{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

type LoginResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, errors.BadRequest("Username and password are required!", nil)
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Blocked {
		return nil, errors.Unauthorized("Invalid username!", nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.Unauthorized("Wrong password!", nil)
	}

	token, err := uc.generateToken(user)
	if err != nil {
		return nil, errors.Internal("Failed to generate token", err)
	}

	return &LoginResult{User: user.Sanitized(), Token: token}, nil
}

func (uc *AuthUseCase) generateToken(user *entity.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(time.Duration(uc.jwtExpiry) * time.Second).Unix(),
	})
	return token.SignedString(uc.jwtSecret)
}
