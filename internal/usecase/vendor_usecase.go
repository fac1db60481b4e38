package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

type VendorUseCase struct {
	vendorRepo   repository.VendorRepository
	materialRepo repository.MaterialRepository
}

func NewVendorUseCase(vendorRepo repository.VendorRepository, materialRepo repository.MaterialRepository) *VendorUseCase {
	return &VendorUseCase{
		vendorRepo:   vendorRepo,
		materialRepo: materialRepo,
	}
}

type VendorDetail struct {
	ID                 string                `json:"id"`
	UserID             string                `json:"user_id"`
	PreferredMaterials []*entity.RawMaterial `json:"preferred_materials"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func (uc *VendorUseCase) GetOrCreateForUser(ctx context.Context, userID string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByUserID(ctx, userID)
	if err == nil {
		return vendor, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := time.Now()
	vendor = &entity.Vendor{
		ID:                 uuid.New().String(),
		UserID:             userID,
		PreferredMaterials: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		if errors.Is(err, "CONFLICT") {
			return uc.vendorRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return vendor, nil
}

// AddPreference is idempotent: preferring an already-preferred material is a
// no-op, not an error.
func (uc *VendorUseCase) AddPreference(ctx context.Context, callerID, vendorID, materialID string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if vendor.UserID != callerID {
		return nil, errors.Forbidden("You can only modify your own preferences", nil)
	}

	if _, err := uc.materialRepo.GetByID(ctx, materialID); err != nil {
		return nil, err
	}

	if vendor.Prefers(materialID) {
		return vendor, nil
	}

	vendor.PreferredMaterials = append(vendor.PreferredMaterials, materialID)
	vendor.UpdatedAt = time.Now()

	if err := uc.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// RemovePreference is idempotent: removing an absent material succeeds.
func (uc *VendorUseCase) RemovePreference(ctx context.Context, callerID, vendorID, materialID string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if vendor.UserID != callerID {
		return nil, errors.Forbidden("You can only modify your own preferences", nil)
	}

	if !vendor.Prefers(materialID) {
		return vendor, nil
	}

	kept := make([]string, 0, len(vendor.PreferredMaterials))
	for _, id := range vendor.PreferredMaterials {
		if id != materialID {
			kept = append(kept, id)
		}
	}
	vendor.PreferredMaterials = kept
	vendor.UpdatedAt = time.Now()

	if err := uc.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

func (uc *VendorUseCase) GetByID(ctx context.Context, vendorID string) (*VendorDetail, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, vendor)
}

func (uc *VendorUseCase) ListAll(ctx context.Context, limit, offset int) ([]*VendorDetail, int64, error) {
	vendors, total, err := uc.vendorRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0)
	for _, vendor := range vendors {
		ids = append(ids, vendor.PreferredMaterials...)
	}

	materials, err := uc.materialRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*VendorDetail, 0, len(vendors))
	for _, vendor := range vendors {
		details = append(details, buildVendorDetail(vendor, materials))
	}

	return details, total, nil
}

func (uc *VendorUseCase) resolve(ctx context.Context, vendor *entity.Vendor) (*VendorDetail, error) {
	materials, err := uc.materialRepo.GetAllByIDs(ctx, vendor.PreferredMaterials)
	if err != nil {
		return nil, err
	}
	return buildVendorDetail(vendor, materials), nil
}

func buildVendorDetail(vendor *entity.Vendor, materials map[string]*entity.RawMaterial) *VendorDetail {
	preferred := make([]*entity.RawMaterial, 0, len(vendor.PreferredMaterials))
	for _, id := range vendor.PreferredMaterials {
		if material, ok := materials[id]; ok {
			preferred = append(preferred, material)
		}
	}

	return &VendorDetail{
		ID:                 vendor.ID,
		UserID:             vendor.UserID,
		PreferredMaterials: preferred,
		CreatedAt:          vendor.CreatedAt,
		UpdatedAt:          vendor.UpdatedAt,
	}
}
