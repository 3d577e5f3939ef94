package handler

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/usecase"
	"teodity/pkg/response"
)

type SuspiciousHandler struct {
	suspiciousUseCase *usecase.SuspiciousUseCase
}

func NewSuspiciousHandler(suspiciousUseCase *usecase.SuspiciousUseCase) *SuspiciousHandler {
	return &SuspiciousHandler{
		suspiciousUseCase: suspiciousUseCase,
	}
}

func (h *SuspiciousHandler) Detect(c echo.Context) error {
	flagged, err := h.suspiciousUseCase.Detect(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, flagged)
}
