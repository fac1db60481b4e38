package repository

import (
	"context"

	"cropsight/internal/domain/entity"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	List(ctx context.Context, limit, offset int) ([]*entity.Vendor, int64, error)
}
