package router

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/adapter/api/handler"
	"cropsight/internal/adapter/api/middleware"
)

func SetupSupplierRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	supplierHandler := handler.GetSupplierHandler()

	suppliers := e.Group("/api/supplier")
	suppliers.GET("/get-suppliers", supplierHandler.ListSuppliers)
	suppliers.GET("/raw-materials", supplierHandler.ListRawMaterials)
	suppliers.GET("/get-supplier/:id", supplierHandler.GetSupplier)

	mine := e.Group("/api/supplier")
	mine.Use(authMiddleware.Authenticate)
	mine.GET("/my-data", supplierHandler.GetMyLedger)
	mine.POST("/add-material", supplierHandler.AddMaterial)
	mine.PUT("/update-material/:materialId", supplierHandler.UpdateMaterial)
	mine.DELETE("/delete-material/:materialId", supplierHandler.DeleteMaterial)
}
