package router

import (
	"github.com/labstack/echo/v4"

	"teodity/internal/adapter/api/handler"
)

func SetupCategoryRouter(e *echo.Echo) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:id", categoryHandler.GetByID)
	e.POST("/categories", categoryHandler.Create)
}
