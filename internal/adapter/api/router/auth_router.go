package router

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/adapter/api/handler"
)

// SetupAuthRouter registers the public registration and login routes.
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)
}
