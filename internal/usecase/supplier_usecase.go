package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	materialRepo repository.MaterialRepository
	materials    *MaterialUseCase
}

func NewSupplierUseCase(
	supplierRepo repository.SupplierRepository,
	materialRepo repository.MaterialRepository,
	materials *MaterialUseCase,
) *SupplierUseCase {
	return &SupplierUseCase{
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		materials:    materials,
	}
}

// OfferDetail is a ledger entry with its catalog material resolved.
type OfferDetail struct {
	Material     *entity.RawMaterial `json:"material"`
	Price        float64             `json:"price"`
	Quantity     float64             `json:"quantity"`
	Availability bool                `json:"availability"`
	Description  string              `json:"description,omitempty"`
	AddedAt      time.Time           `json:"added_at"`
}

type SupplierDetail struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	RawMaterials []OfferDetail `json:"raw_materials"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type AddOfferInput struct {
	MaterialName string
	Unit         string
	Category     string
	Price        float64
	Quantity     float64
	Availability bool
	Description  string
}

type UpdateOfferInput struct {
	Price        *float64
	Quantity     *float64
	Availability *bool
	Description  *string
}

// GetOrCreateForUser is the ensure-exists constructor: a supplier-role user
// normally gets the document at registration, but any earlier data loss or a
// pre-migration account is healed here.
func (uc *SupplierUseCase) GetOrCreateForUser(ctx context.Context, userID string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByUserID(ctx, userID)
	if err == nil {
		return supplier, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := time.Now()
	supplier = &entity.Supplier{
		ID:           uuid.New().String(),
		UserID:       userID,
		RawMaterials: []entity.MaterialOffer{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		// Lost a concurrent first-access race; the document exists now.
		if errors.Is(err, "CONFLICT") {
			return uc.supplierRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return supplier, nil
}

func (uc *SupplierUseCase) AddOffer(ctx context.Context, userID string, input AddOfferInput) (*entity.Supplier, error) {
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must be zero or greater", nil)
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity must be zero or greater", nil)
	}

	material, err := uc.materials.FindOrCreate(ctx, input.MaterialName, input.Unit, input.Category)
	if err != nil {
		return nil, err
	}

	supplier, err := uc.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if supplier.OfferFor(material.ID) != nil {
		return nil, errors.Duplicate("Material already listed by this supplier")
	}

	supplier.RawMaterials = append(supplier.RawMaterials, entity.MaterialOffer{
		MaterialID:   material.ID,
		Price:        input.Price,
		Quantity:     input.Quantity,
		Availability: input.Availability,
		Description:  input.Description,
		AddedAt:      time.Now(),
	})
	supplier.UpdatedAt = time.Now()

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

func (uc *SupplierUseCase) UpdateOffer(ctx context.Context, userID, materialID string, input UpdateOfferInput) (*entity.Supplier, error) {
	supplier, err := uc.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	offer := supplier.OfferFor(materialID)
	if offer == nil {
		return nil, errors.NotFound("Offer", nil)
	}

	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.BadRequest("Price must be zero or greater", nil)
		}
		offer.Price = *input.Price
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, errors.BadRequest("Quantity must be zero or greater", nil)
		}
		offer.Quantity = *input.Quantity
	}
	if input.Availability != nil {
		offer.Availability = *input.Availability
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}
	supplier.UpdatedAt = time.Now()

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

func (uc *SupplierUseCase) RemoveOffer(ctx context.Context, userID, materialID string) error {
	supplier, err := uc.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	kept := supplier.RawMaterials[:0]
	for _, offer := range supplier.RawMaterials {
		if offer.MaterialID == materialID {
			found = true
			continue
		}
		kept = append(kept, offer)
	}
	if !found {
		return errors.NotFound("Offer", nil)
	}

	supplier.RawMaterials = kept
	supplier.UpdatedAt = time.Now()

	return uc.supplierRepo.Update(ctx, supplier)
}

func (uc *SupplierUseCase) GetMyLedger(ctx context.Context, userID string) (*SupplierDetail, error) {
	supplier, err := uc.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, supplier)
}

func (uc *SupplierUseCase) GetByID(ctx context.Context, supplierID string) (*SupplierDetail, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, supplier)
}

func (uc *SupplierUseCase) ListAll(ctx context.Context, limit, offset int) ([]*SupplierDetail, int64, error) {
	suppliers, total, err := uc.supplierRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0)
	for _, supplier := range suppliers {
		for _, offer := range supplier.RawMaterials {
			ids = append(ids, offer.MaterialID)
		}
	}

	materials, err := uc.materialRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*SupplierDetail, 0, len(suppliers))
	for _, supplier := range suppliers {
		details = append(details, buildSupplierDetail(supplier, materials))
	}

	return details, total, nil
}

func (uc *SupplierUseCase) resolve(ctx context.Context, supplier *entity.Supplier) (*SupplierDetail, error) {
	ids := make([]string, 0, len(supplier.RawMaterials))
	for _, offer := range supplier.RawMaterials {
		ids = append(ids, offer.MaterialID)
	}

	materials, err := uc.materialRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return buildSupplierDetail(supplier, materials), nil
}

func buildSupplierDetail(supplier *entity.Supplier, materials map[string]*entity.RawMaterial) *SupplierDetail {
	offers := make([]OfferDetail, 0, len(supplier.RawMaterials))
	for _, offer := range supplier.RawMaterials {
		offers = append(offers, OfferDetail{
			Material:     materials[offer.MaterialID],
			Price:        offer.Price,
			Quantity:     offer.Quantity,
			Availability: offer.Availability,
			Description:  offer.Description,
			AddedAt:      offer.AddedAt,
		})
	}

	return &SupplierDetail{
		ID:           supplier.ID,
		UserID:       supplier.UserID,
		RawMaterials: offers,
		CreatedAt:    supplier.CreatedAt,
		UpdatedAt:    supplier.UpdatedAt,
	}
}
