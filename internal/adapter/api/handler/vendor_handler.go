package handler

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/usecase"
	"cropsight/pkg/errors"
	"cropsight/pkg/response"
	"cropsight/pkg/utils"
)

type VendorHandler struct {
	vendorUseCase  *usecase.VendorUseCase
	pricingUseCase *usecase.PricingUseCase
}

func NewVendorHandler(vendorUseCase *usecase.VendorUseCase, pricingUseCase *usecase.PricingUseCase) *VendorHandler {
	return &VendorHandler{
		vendorUseCase:  vendorUseCase,
		pricingUseCase: pricingUseCase,
	}
}

func (h *VendorHandler) ListVendors(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	vendors, total, err := h.vendorUseCase.ListAll(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, vendors, total, params.Page, params.PageSize)
}

func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendorID := c.Param("id")
	if vendorID == "" {
		return response.Error(c, errors.BadRequest("Vendor ID is required", nil))
	}

	vendor, err := h.vendorUseCase.GetByID(c.Request().Context(), vendorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendor)
}

func (h *VendorHandler) CreateVendor(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	vendor, err := h.vendorUseCase.GetOrCreateForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, vendor)
}

func (h *VendorHandler) PredictPrice(c echo.Context) error {
	var req struct {
		MaterialID string `json:"materialId" form:"materialId" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	prediction, err := h.pricingUseCase.Predict(c.Request().Context(), req.MaterialID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, prediction)
}

func (h *VendorHandler) AddPreferredMaterial(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	vendorID := c.Param("vendorId")
	if vendorID == "" {
		return response.Error(c, errors.BadRequest("Vendor ID is required", nil))
	}

	var req struct {
		MaterialID string `json:"materialId" form:"materialId" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	vendor, err := h.vendorUseCase.AddPreference(c.Request().Context(), userID, vendorID, req.MaterialID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendor)
}

func (h *VendorHandler) RemovePreferredMaterial(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	vendorID := c.Param("vendorId")
	materialID := c.Param("materialId")
	if vendorID == "" || materialID == "" {
		return response.Error(c, errors.BadRequest("Vendor ID and material ID are required", nil))
	}

	vendor, err := h.vendorUseCase.RemovePreference(c.Request().Context(), userID, vendorID, materialID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendor)
}
