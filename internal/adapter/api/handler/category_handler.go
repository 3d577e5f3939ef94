package handler

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/usecase"
	"teodity/pkg/errors"
	"teodity/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Create(c.Request().Context(), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, category)
}
