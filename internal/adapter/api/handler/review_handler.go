package handler

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/usecase"
	"teodity/pkg/errors"
	"teodity/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ReviewerID     int    `json:"reviewerId" validate:"required"`
	ReviewedUserID int    `json:"reviewedUserId" validate:"required"`
	Grade          int    `json:"grade" validate:"required"`
	Comment        string `json:"comment"`
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Create(c.Request().Context(), usecase.CreateReviewInput{
		ReviewerID:     req.ReviewerID,
		ReviewedUserID: req.ReviewedUserID,
		Grade:          req.Grade,
		Comment:        req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, review)
}

func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *ReviewHandler) ListForUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

func (h *ReviewHandler) ListByReviewer(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListByReviewer(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reviews)
}

type updateReviewRequest struct {
	Grade   *int    `json:"grade"`
	Comment *string `json:"comment"`
}

func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	review, err := h.reviewUseCase.Update(c.Request().Context(), id, usecase.UpdateReviewInput{
		Grade:   req.Grade,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.reviewUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Review deleted successfully",
	})
}
