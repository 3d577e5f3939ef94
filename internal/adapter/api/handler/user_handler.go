package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"

	"teodity/internal/domain/service"
	"teodity/internal/usecase"
	"teodity/pkg/errors"
	"teodity/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	fileStore   service.FileStore
}

func NewUserHandler(userUseCase *usecase.UserUseCase, fileStore service.FileStore) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		fileStore:   fileStore,
	}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Expected multipart form data", err))
	}

	input := usecase.UpdateProfileInput{
		Name:        formPtr(form, "name"),
		Surname:     formPtr(form, "surname"),
		Birthday:    formPtr(form, "birthday"),
		Description: formPtr(form, "description"),
		Number:      formPtr(form, "number"),
	}

	var saved string
	if files := form.File["image"]; len(files) > 0 {
		saved, err = saveUpload(h.fileStore, files[0])
		if err != nil {
			return response.Error(c, err)
		}
		input.Image = saved
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), id, input)
	if err != nil {
		if saved != "" {
			discardUploads(h.fileStore, []string{saved})
		}
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

type updateCredentialsRequest struct {
	CurrentPassword string  `json:"currentPassword" validate:"required"`
	Username        string  `json:"username"`
	Mail            string  `json:"mail" validate:"omitempty,email"`
	NewPassword     *string `json:"newPassword"`
}

func (h *UserHandler) UpdateCredentials(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req updateCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateCredentials(c.Request().Context(), id, usecase.UpdateCredentialsInput{
		CurrentPassword: req.CurrentPassword,
		Username:        req.Username,
		Mail:            req.Mail,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) Block(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.Block(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "User blocked successfully",
	})
}

func paramID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("Invalid id parameter", err)
	}
	return id, nil
}

func formPtr(form *multipart.Form, key string) *string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		v := vals[0]
		return &v
	}
	return nil
}
