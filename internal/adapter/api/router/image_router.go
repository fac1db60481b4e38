package router

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/adapter/api/handler"
	"cropsight/internal/adapter/api/middleware"
)

func SetupImageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	imageHandler := handler.GetImageHandler()

	// The relay is a public passthrough; callers are not identified.
	images := e.Group("/api/image")
	images.POST("/upload", imageHandler.UploadImage)
	images.POST("/upload-multiple", imageHandler.UploadImages)

	// Storage IDs contain slashes, so these take a wildcard instead of :id.
	images.DELETE("/delete/*", imageHandler.DeleteImage)
	images.GET("/details/*", imageHandler.GetImageDetails)
}
