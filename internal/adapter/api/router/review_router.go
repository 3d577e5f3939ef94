package router

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/adapter/api/handler"
	"teodity/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.POST("/reviews", reviewHandler.Create)
	e.GET("/reviews/user/:userId", reviewHandler.ListForUser)
	e.GET("/reviews/by-user/:userId", reviewHandler.ListByReviewer)

	admin := e.Group("/reviews")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.GET("", reviewHandler.List)
	admin.PUT("/:id", reviewHandler.Update)
	admin.DELETE("/:id", reviewHandler.Delete)
}
