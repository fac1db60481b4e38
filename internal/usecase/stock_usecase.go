package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/internal/domain/service"
	"cropsight/pkg/errors"
	"cropsight/pkg/logger"
)

const stockImageFolder = "cropsight/stocks"

type StockUseCase struct {
	stockRepo    repository.StockRepository
	supplierRepo repository.SupplierRepository
	materialRepo repository.MaterialRepository
	files        service.FileUploadService
}

func NewStockUseCase(
	stockRepo repository.StockRepository,
	supplierRepo repository.SupplierRepository,
	materialRepo repository.MaterialRepository,
	files service.FileUploadService,
) *StockUseCase {
	return &StockUseCase{
		stockRepo:    stockRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		files:        files,
	}
}

// ImageUpload carries one image from a multipart request into the relay.
type ImageUpload struct {
	Content     io.Reader
	ContentType string
	AltText     string
}

type CreateStockInput struct {
	SupplierID   string
	MaterialID   string
	Quantity     float64
	Price        float64
	Description  string
	Location     entity.StockLocation
	HarvestDate  *time.Time
	ExpiryDate   *time.Time
	QualityGrade string
	Availability bool
}

type UpdateStockInput struct {
	Quantity     *float64
	Price        *float64
	Description  *string
	Location     *entity.StockLocation
	HarvestDate  *time.Time
	ExpiryDate   *time.Time
	QualityGrade *string
	Availability *bool
}

// StockDetail is a stock listing with its catalog material resolved.
type StockDetail struct {
	*entity.Stock
	Material *entity.RawMaterial `json:"material,omitempty"`
}

func (uc *StockUseCase) Create(ctx context.Context, userID string, input CreateStockInput, images []ImageUpload) (*entity.Stock, error) {
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity must be zero or greater", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must be zero or greater", nil)
	}

	if input.QualityGrade == "" {
		input.QualityGrade = "A"
	}
	if !entity.IsValidQualityGrade(input.QualityGrade) {
		return nil, errors.BadRequest("Quality grade must be one of A, B, C, Premium", nil)
	}

	if _, err := uc.supplierRepo.GetByID(ctx, input.SupplierID); err != nil {
		return nil, err
	}
	if _, err := uc.materialRepo.GetByID(ctx, input.MaterialID); err != nil {
		return nil, err
	}

	stockImages, err := uc.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stock := &entity.Stock{
		ID:           uuid.New().String(),
		UserID:       userID,
		SupplierID:   input.SupplierID,
		MaterialID:   input.MaterialID,
		Quantity:     input.Quantity,
		Price:        input.Price,
		Description:  input.Description,
		Images:       stockImages,
		Location:     input.Location,
		HarvestDate:  input.HarvestDate,
		ExpiryDate:   input.ExpiryDate,
		QualityGrade: input.QualityGrade,
		Availability: input.Availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.stockRepo.Create(ctx, stock); err != nil {
		uc.deleteImages(ctx, stockImages)
		return nil, err
	}

	return stock, nil
}

func (uc *StockUseCase) Update(ctx context.Context, userID, stockID string, input UpdateStockInput, newImages []ImageUpload) (*entity.Stock, error) {
	stock, err := uc.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return nil, err
	}

	if stock.UserID != userID {
		return nil, errors.Forbidden("You can only update your own stocks", nil)
	}

	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, errors.BadRequest("Quantity must be zero or greater", nil)
		}
		stock.Quantity = *input.Quantity
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.BadRequest("Price must be zero or greater", nil)
		}
		stock.Price = *input.Price
	}
	if input.Description != nil {
		stock.Description = *input.Description
	}
	if input.Location != nil {
		stock.Location = *input.Location
	}
	if input.HarvestDate != nil {
		stock.HarvestDate = input.HarvestDate
	}
	if input.ExpiryDate != nil {
		stock.ExpiryDate = input.ExpiryDate
	}
	if input.QualityGrade != nil {
		if !entity.IsValidQualityGrade(*input.QualityGrade) {
			return nil, errors.BadRequest("Quality grade must be one of A, B, C, Premium", nil)
		}
		stock.QualityGrade = *input.QualityGrade
	}
	if input.Availability != nil {
		stock.Availability = *input.Availability
	}

	// The image set is replaced only when new images arrive with the update.
	if len(newImages) > 0 {
		uploaded, err := uc.uploadImages(ctx, newImages)
		if err != nil {
			return nil, err
		}
		uc.deleteImages(ctx, stock.Images)
		stock.Images = uploaded
	}

	stock.UpdatedAt = time.Now()

	if err := uc.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}

	return stock, nil
}

func (uc *StockUseCase) Delete(ctx context.Context, userID, stockID string) error {
	stock, err := uc.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return err
	}

	if stock.UserID != userID {
		return errors.Forbidden("You can only delete your own stocks", nil)
	}

	uc.deleteImages(ctx, stock.Images)

	return uc.stockRepo.Delete(ctx, stockID)
}

func (uc *StockUseCase) GetByID(ctx context.Context, stockID string) (*StockDetail, error) {
	stock, err := uc.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return nil, err
	}

	details, err := uc.resolve(ctx, []*entity.Stock{stock})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (uc *StockUseCase) ListAll(ctx context.Context, limit, offset int) ([]*StockDetail, int64, error) {
	stocks, total, err := uc.stockRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	details, err := uc.resolve(ctx, stocks)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func (uc *StockUseCase) ListByOwner(ctx context.Context, userID string) ([]*StockDetail, error) {
	stocks, err := uc.stockRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, stocks)
}

func (uc *StockUseCase) ListBySupplier(ctx context.Context, supplierID string) ([]*StockDetail, error) {
	stocks, err := uc.stockRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, stocks)
}

func (uc *StockUseCase) ListByMaterial(ctx context.Context, materialID string) ([]*StockDetail, error) {
	stocks, err := uc.stockRepo.ListByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, stocks)
}

// uploadImages pushes every image through the relay. An upload failure aborts
// the whole batch; anything stored before the failure is removed best-effort.
func (uc *StockUseCase) uploadImages(ctx context.Context, images []ImageUpload) ([]entity.StockImage, error) {
	stockImages := make([]entity.StockImage, 0, len(images))
	for _, img := range images {
		result, err := uc.files.UploadFile(ctx, img.Content, img.ContentType, stockImageFolder)
		if err != nil {
			uc.deleteImages(ctx, stockImages)
			return nil, errors.Upstream("Failed to upload image", err)
		}
		stockImages = append(stockImages, entity.StockImage{
			URL:       result.URL,
			StorageID: result.StorageID,
			AltText:   img.AltText,
		})
	}
	return stockImages, nil
}

// deleteImages is best-effort cleanup: one failed delete never blocks the
// rest.
func (uc *StockUseCase) deleteImages(ctx context.Context, images []entity.StockImage) {
	for _, img := range images {
		if err := uc.files.DeleteFile(ctx, img.StorageID); err != nil {
			logger.Warn("Failed to delete stock image %s: %v", img.StorageID, err)
		}
	}
}

func (uc *StockUseCase) resolve(ctx context.Context, stocks []*entity.Stock) ([]*StockDetail, error) {
	ids := make([]string, 0, len(stocks))
	for _, stock := range stocks {
		ids = append(ids, stock.MaterialID)
	}

	materials, err := uc.materialRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]*StockDetail, 0, len(stocks))
	for _, stock := range stocks {
		details = append(details, &StockDetail{
			Stock:    stock,
			Material: materials[stock.MaterialID],
		})
	}
	return details, nil
}
