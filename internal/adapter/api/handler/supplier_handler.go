package handler

import (
	"github.com/labstack/echo/v4"

	"cropsight/internal/usecase"
	"cropsight/pkg/errors"
	"cropsight/pkg/response"
	"cropsight/pkg/utils"
)

type SupplierHandler struct {
	supplierUseCase *usecase.SupplierUseCase
	materialUseCase *usecase.MaterialUseCase
}

func NewSupplierHandler(supplierUseCase *usecase.SupplierUseCase, materialUseCase *usecase.MaterialUseCase) *SupplierHandler {
	return &SupplierHandler{
		supplierUseCase: supplierUseCase,
		materialUseCase: materialUseCase,
	}
}

type addOfferRequest struct {
	Name         string  `json:"name" form:"name" validate:"required"`
	Unit         string  `json:"unit" form:"unit" validate:"required"`
	Category     string  `json:"category" form:"category" validate:"required"`
	Price        float64 `json:"price" form:"price" validate:"gte=0"`
	Quantity     float64 `json:"quantity" form:"quantity" validate:"gte=0"`
	Availability bool    `json:"availability" form:"availability"`
	Description  string  `json:"description" form:"description"`
}

type updateOfferRequest struct {
	Price        *float64 `json:"price" form:"price"`
	Quantity     *float64 `json:"quantity" form:"quantity"`
	Availability *bool    `json:"availability" form:"availability"`
	Description  *string  `json:"description" form:"description"`
}

func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	suppliers, total, err := h.supplierUseCase.ListAll(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, suppliers, total, params.Page, params.PageSize)
}

func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	supplierID := c.Param("id")
	if supplierID == "" {
		return response.Error(c, errors.BadRequest("Supplier ID is required", nil))
	}

	supplier, err := h.supplierUseCase.GetByID(c.Request().Context(), supplierID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, supplier)
}

func (h *SupplierHandler) GetMyLedger(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	ledger, err := h.supplierUseCase.GetMyLedger(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ledger)
}

func (h *SupplierHandler) ListRawMaterials(c echo.Context) error {
	materials, err := h.materialUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, materials)
}

func (h *SupplierHandler) AddMaterial(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req addOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	supplier, err := h.supplierUseCase.AddOffer(c.Request().Context(), userID, usecase.AddOfferInput{
		MaterialName: req.Name,
		Unit:         req.Unit,
		Category:     req.Category,
		Price:        req.Price,
		Quantity:     req.Quantity,
		Availability: req.Availability,
		Description:  req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, supplier)
}

func (h *SupplierHandler) UpdateMaterial(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	materialID := c.Param("materialId")
	if materialID == "" {
		return response.Error(c, errors.BadRequest("Material ID is required", nil))
	}

	var req updateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}

	supplier, err := h.supplierUseCase.UpdateOffer(c.Request().Context(), userID, materialID, usecase.UpdateOfferInput{
		Price:        req.Price,
		Quantity:     req.Quantity,
		Availability: req.Availability,
		Description:  req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, supplier)
}

func (h *SupplierHandler) DeleteMaterial(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	materialID := c.Param("materialId")
	if materialID == "" {
		return response.Error(c, errors.BadRequest("Material ID is required", nil))
	}

	if err := h.supplierUseCase.RemoveOffer(c.Request().Context(), userID, materialID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Material removed from your listings", nil)
}
