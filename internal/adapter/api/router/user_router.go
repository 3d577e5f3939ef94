package router

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/adapter/api/handler"
	"teodity/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()
	suspiciousHandler := handler.GetSuspiciousHandler()

	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.GetByID)
	e.PUT("/users/:id/profile", userHandler.UpdateProfile)
	e.PUT("/users/:id/credentials", userHandler.UpdateCredentials)

	// Moderation surface
	admin := e.Group("/users")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.GET("/suspicious", suspiciousHandler.Detect)
	admin.DELETE("/:id", userHandler.Block)
}
