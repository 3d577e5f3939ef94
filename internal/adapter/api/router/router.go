package router

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupCategoryRouter(e)
	SetupProductRouter(e)
	SetupReviewRouter(e, authMiddleware, adminMiddleware)
	SetupReportRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
