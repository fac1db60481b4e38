package router

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/adapter/api/handler"
	"cropsight/internal/adapter/api/middleware"
)

func SetupVendorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	vendorHandler := handler.GetVendorHandler()

	vendors := e.Group("/api/vendor")
	vendors.GET("/getall-vendors", vendorHandler.ListVendors)
	vendors.GET("/get-vendor/:id", vendorHandler.GetVendor)
	vendors.POST("/predict-price", vendorHandler.PredictPrice)

	mine := e.Group("/api/vendor")
	mine.Use(authMiddleware.Authenticate)
	mine.POST("/create-vendor", vendorHandler.CreateVendor)
	mine.POST("/preferred-material/:vendorId", vendorHandler.AddPreferredMaterial)
	mine.DELETE("/preferred-material/:vendorId/:materialId", vendorHandler.RemovePreferredMaterial)
}
