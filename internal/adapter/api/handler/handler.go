package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"cropsight/internal/domain/service"
	"cropsight/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	supplierHandler *SupplierHandler
	vendorHandler   *VendorHandler
	stockHandler    *StockHandler
	imageHandler    *ImageHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	materialUseCase *usecase.MaterialUseCase,
	supplierUseCase *usecase.SupplierUseCase,
	vendorUseCase *usecase.VendorUseCase,
	pricingUseCase *usecase.PricingUseCase,
	stockUseCase *usecase.StockUseCase,
	fileService service.FileUploadService,
	cookieTTL time.Duration,
) {
	authHandler = NewAuthHandler(authUseCase, cookieTTL)
	userHandler = NewUserHandler(userUseCase)
	supplierHandler = NewSupplierHandler(supplierUseCase, materialUseCase)
	vendorHandler = NewVendorHandler(vendorUseCase, pricingUseCase)
	stockHandler = NewStockHandler(stockUseCase)
	imageHandler = NewImageHandler(fileService)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetSupplierHandler() *SupplierHandler {
	return supplierHandler
}

func GetVendorHandler() *VendorHandler {
	return vendorHandler
}

func GetStockHandler() *StockHandler {
	return stockHandler
}

func GetImageHandler() *ImageHandler {
	return imageHandler
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}
