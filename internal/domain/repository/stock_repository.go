package repository

import (
	"context"

	"cropsight/internal/domain/entity"
)

type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	Update(ctx context.Context, stock *entity.Stock) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Stock, int64, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Stock, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Stock, error)
	ListByMaterial(ctx context.Context, materialID string) ([]*entity.Stock, error)
}
