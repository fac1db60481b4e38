package repository

import (
	"context"

	"cropsight/internal/domain/entity"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *entity.RawMaterial) error
	GetByID(ctx context.Context, id string) (*entity.RawMaterial, error)
	// GetByNameAndCategory matches on the lowercased name.
	GetByNameAndCategory(ctx context.Context, nameLower, category string) (*entity.RawMaterial, error)
	List(ctx context.Context) ([]*entity.RawMaterial, error)
	GetAllByIDs(ctx context.Context, ids []string) (map[string]*entity.RawMaterial, error)
}
