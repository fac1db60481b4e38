package router

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/adapter/api/handler"
	"cropsight/internal/adapter/api/middleware"
)

func SetupStockRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	stockHandler := handler.GetStockHandler()

	stocks := e.Group("/api/stock")
	stocks.GET("/all", stockHandler.ListStocks)
	stocks.GET("/supplier/:supplierId", stockHandler.ListStocksBySupplier)
	stocks.GET("/material/:materialId", stockHandler.ListStocksByMaterial)
	stocks.GET("/:id", stockHandler.GetStock)

	mine := e.Group("/api/stock")
	mine.Use(authMiddleware.Authenticate)
	mine.POST("/create", stockHandler.CreateStock)
	mine.GET("/my-stocks", stockHandler.ListMyStocks)
	mine.PUT("/:id", stockHandler.UpdateStock)
	mine.DELETE("/:id", stockHandler.DeleteStock)
}
