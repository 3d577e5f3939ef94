package handler

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/usecase"
	"teodity/pkg/errors"
	"teodity/pkg/response"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type createReportRequest struct {
	ReporterID     int    `json:"reporterId" validate:"required"`
	ReportedUserID int    `json:"reportedUserId" validate:"required"`
	Reason         string `json:"reason" validate:"required"`
}

func (h *ReportHandler) Create(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.Create(c.Request().Context(), usecase.CreateReportInput{
		ReporterID:     req.ReporterID,
		ReportedUserID: req.ReportedUserID,
		Reason:         req.Reason,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, report)
}

func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.reportUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reports)
}

func (h *ReportHandler) ListPending(c echo.Context) error {
	reports, err := h.reportUseCase.ListPending(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reports)
}

func (h *ReportHandler) GetByID(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, report)
}

func (h *ReportHandler) Approve(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.Approve(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, report)
}

type rejectReportRequest struct {
	AdminComment string `json:"adminComment" validate:"required"`
}

func (h *ReportHandler) Reject(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req rejectReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.Reject(c.Request().Context(), id, req.AdminComment)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, report)
}

func (h *ReportHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.reportUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Report deleted successfully",
	})
}
