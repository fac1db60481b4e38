package repository

import (
	"context"

	"cropsight/internal/domain/entity"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, int64, error)
	// ListByMaterial returns every supplier whose ledger contains an offer for
	// the material.
	ListByMaterial(ctx context.Context, materialID string) ([]*entity.Supplier, error)
}
