package handler

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/usecase"
	"teodity/pkg/errors"
	"teodity/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Surname         string `json:"surname" validate:"required"`
	Username        string `json:"username" validate:"required,min=3"`
	Mail            string `json:"mail" validate:"required,email"`
	Number          string `json:"number"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Birthday        string `json:"birthday"`
	Description     string `json:"description"`
	Role            string `json:"role" validate:"required,oneof=Buyer Seller"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:            req.Name,
		Surname:         req.Surname,
		Username:        req.Username,
		Mail:            req.Mail,
		Number:          req.Number,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Birthday:        req.Birthday,
		Description:     req.Description,
		Role:            req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
