package router

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/adapter/api/handler"
	"teodity/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reportHandler := handler.GetReportHandler()

	e.POST("/reports", reportHandler.Create)

	admin := e.Group("/reports")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.GET("", reportHandler.List)
	admin.GET("/pending", reportHandler.ListPending)
	admin.GET("/:id", reportHandler.GetByID)
	admin.PUT("/:id/approve", reportHandler.Approve)
	admin.PUT("/:id/reject", reportHandler.Reject)
	admin.DELETE("/:id", reportHandler.Delete)
}
