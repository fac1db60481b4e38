package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

type MaterialUseCase struct {
	materialRepo repository.MaterialRepository
}

func NewMaterialUseCase(materialRepo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{materialRepo: materialRepo}
}

// FindOrCreate resolves a catalog entry by case-insensitive (name, category)
// and creates it when absent. Every path that introduces a material reference
// goes through here, which is what keeps the catalog de-duplicated.
func (uc *MaterialUseCase) FindOrCreate(ctx context.Context, name, unit, category string) (*entity.RawMaterial, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" {
		return nil, errors.BadRequest("Material name and category are required", nil)
	}
	if !entity.IsValidUnit(unit) {
		return nil, errors.BadRequest("Invalid unit: "+unit, nil)
	}

	nameLower := strings.ToLower(name)

	existing, err := uc.materialRepo.GetByNameAndCategory(ctx, nameLower, category)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	material := &entity.RawMaterial{
		ID:        uuid.New().String(),
		Name:      name,
		NameLower: nameLower,
		Unit:      unit,
		Category:  category,
		CreatedAt: time.Now(),
	}

	if err := uc.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	return material, nil
}

func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return uc.materialRepo.GetByID(ctx, id)
}

func (uc *MaterialUseCase) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if materials == nil {
		materials = []*entity.RawMaterial{}
	}
	return materials, nil
}
