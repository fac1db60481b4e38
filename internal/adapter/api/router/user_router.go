package router

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/adapter/api/handler"
	"cropsight/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/api/user")
	users.Use(authMiddleware.Authenticate)
	users.GET("/data", userHandler.GetUserData)
	users.GET("/role", userHandler.GetUserRole)
}
