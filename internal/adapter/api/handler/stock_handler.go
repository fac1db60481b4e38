package handler

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"cropsight/internal/domain/entity"
	"cropsight/internal/usecase"
	"cropsight/pkg/errors"
	"cropsight/pkg/response"
	"cropsight/pkg/utils"
)

const (
	maxStockImages    = 5
	maxStockImageSize = 5 << 20
)

type StockHandler struct {
	stockUseCase *usecase.StockUseCase
}

func NewStockHandler(stockUseCase *usecase.StockUseCase) *StockHandler {
	return &StockHandler{stockUseCase: stockUseCase}
}

func (h *StockHandler) CreateStock(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	supplierID := c.FormValue("supplierId")
	materialID := c.FormValue("materialId")
	if supplierID == "" || materialID == "" {
		return response.Error(c, errors.BadRequest("Supplier ID and material ID are required", nil))
	}

	quantity, err := parseFloatField(c, "quantity")
	if err != nil {
		return response.Error(c, err)
	}
	price, err := parseFloatField(c, "price")
	if err != nil {
		return response.Error(c, err)
	}

	harvestDate, err := parseDateField(c, "harvestDate")
	if err != nil {
		return response.Error(c, err)
	}
	expiryDate, err := parseDateField(c, "expiryDate")
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateStockInput{
		SupplierID:  supplierID,
		MaterialID:  materialID,
		Quantity:    quantity,
		Price:       price,
		Description: c.FormValue("description"),
		Location: entity.StockLocation{
			City:    c.FormValue("city"),
			State:   c.FormValue("state"),
			Pincode: c.FormValue("pincode"),
		},
		HarvestDate:  harvestDate,
		ExpiryDate:   expiryDate,
		QualityGrade: c.FormValue("qualityGrade"),
		Availability: parseBoolField(c, "availability", true),
	}

	images, closers, err := collectImages(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeAll(closers)

	stock, err := h.stockUseCase.Create(c.Request().Context(), userID, input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, stock)
}

func (h *StockHandler) UpdateStock(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	stockID := c.Param("id")
	if stockID == "" {
		return response.Error(c, errors.BadRequest("Stock ID is required", nil))
	}

	var input usecase.UpdateStockInput

	if v := c.FormValue("quantity"); v != "" {
		quantity, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("quantity must be a number", err))
		}
		input.Quantity = &quantity
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("price must be a number", err))
		}
		input.Price = &price
	}
	if v := c.FormValue("description"); v != "" {
		input.Description = &v
	}
	if city, state, pincode := c.FormValue("city"), c.FormValue("state"), c.FormValue("pincode"); city != "" || state != "" || pincode != "" {
		input.Location = &entity.StockLocation{City: city, State: state, Pincode: pincode}
	}
	if v := c.FormValue("harvestDate"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return response.Error(c, errors.BadRequest("harvestDate must be a valid date", err))
		}
		input.HarvestDate = &date
	}
	if v := c.FormValue("expiryDate"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return response.Error(c, errors.BadRequest("expiryDate must be a valid date", err))
		}
		input.ExpiryDate = &date
	}
	if v := c.FormValue("qualityGrade"); v != "" {
		input.QualityGrade = &v
	}
	if v := c.FormValue("availability"); v != "" {
		availability := v == "true" || v == "1"
		input.Availability = &availability
	}

	images, closers, err := collectImages(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeAll(closers)

	stock, err := h.stockUseCase.Update(c.Request().Context(), userID, stockID, input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stock)
}

func (h *StockHandler) DeleteStock(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	stockID := c.Param("id")
	if stockID == "" {
		return response.Error(c, errors.BadRequest("Stock ID is required", nil))
	}

	if err := h.stockUseCase.Delete(c.Request().Context(), userID, stockID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Stock deleted successfully", nil)
}

func (h *StockHandler) GetStock(c echo.Context) error {
	stockID := c.Param("id")
	if stockID == "" {
		return response.Error(c, errors.BadRequest("Stock ID is required", nil))
	}

	stock, err := h.stockUseCase.GetByID(c.Request().Context(), stockID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stock)
}

func (h *StockHandler) ListStocks(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	stocks, total, err := h.stockUseCase.ListAll(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, stocks, total, params.Page, params.PageSize)
}

func (h *StockHandler) ListMyStocks(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	stocks, err := h.stockUseCase.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stocks)
}

func (h *StockHandler) ListStocksBySupplier(c echo.Context) error {
	supplierID := c.Param("supplierId")
	if supplierID == "" {
		return response.Error(c, errors.BadRequest("Supplier ID is required", nil))
	}

	stocks, err := h.stockUseCase.ListBySupplier(c.Request().Context(), supplierID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stocks)
}

func (h *StockHandler) ListStocksByMaterial(c echo.Context) error {
	materialID := c.Param("materialId")
	if materialID == "" {
		return response.Error(c, errors.BadRequest("Material ID is required", nil))
	}

	stocks, err := h.stockUseCase.ListByMaterial(c.Request().Context(), materialID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stocks)
}

// collectImages gathers the "images" multipart files, enforcing the per-file
// size cap, the batch cap and the image/* content-type restriction. The
// returned closers must be closed by the caller after the upload completes.
func collectImages(c echo.Context) ([]usecase.ImageUpload, []multipart.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Not a multipart request or no files attached.
		return nil, nil, nil
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil, nil
	}
	if len(files) > maxStockImages {
		return nil, nil, errors.BadRequest("At most 5 images are allowed", nil)
	}

	altTexts := form.Value["altTexts"]

	images := make([]usecase.ImageUpload, 0, len(files))
	closers := make([]multipart.File, 0, len(files))
	for i, fileHeader := range files {
		if fileHeader.Size > maxStockImageSize {
			closeAll(closers)
			return nil, nil, errors.BadRequest("Each image must be 5MB or smaller", nil)
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			closeAll(closers)
			return nil, nil, errors.BadRequest("Only image files are allowed", nil)
		}

		file, err := fileHeader.Open()
		if err != nil {
			closeAll(closers)
			return nil, nil, errors.BadRequest("Failed to read uploaded file", err)
		}
		closers = append(closers, file)

		altText := ""
		if i < len(altTexts) {
			altText = altTexts[i]
		}

		images = append(images, usecase.ImageUpload{
			Content:     file,
			ContentType: contentType,
			AltText:     altText,
		})
	}

	return images, closers, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}

func parseFloatField(c echo.Context, field string) (float64, error) {
	v := c.FormValue(field)
	if v == "" {
		return 0, errors.BadRequest(field+" is required", nil)
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.BadRequest(field+" must be a number", err)
	}
	return parsed, nil
}

func parseDateField(c echo.Context, field string) (*time.Time, error) {
	v := c.FormValue(field)
	if v == "" {
		return nil, nil
	}
	date, err := parseDate(v)
	if err != nil {
		return nil, errors.BadRequest(field+" must be a valid date", err)
	}
	return &date, nil
}

func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseBoolField(c echo.Context, field string, fallback bool) bool {
	v := c.FormValue(field)
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1"
}
