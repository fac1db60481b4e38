package router

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/adapter/api/handler"
	"cropsight/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/send-reset-otp", authHandler.SendResetOTP)
	auth.POST("/password-reset", authHandler.ResetPassword)

	verified := e.Group("/api/auth")
	verified.Use(authMiddleware.Authenticate)
	verified.POST("/send-verify-otp", authHandler.SendVerifyOTP)
	verified.POST("/verify-account", authHandler.VerifyAccount)
	verified.GET("/is-auth", authHandler.IsAuthenticated)
}
