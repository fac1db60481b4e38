package router

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupSupplierRouter(e, authMiddleware)
	SetupVendorRouter(e, authMiddleware)
	SetupStockRouter(e, authMiddleware)
	SetupImageRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
