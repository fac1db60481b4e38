package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

type firestoreStockRepository struct {
	client *firestore.Client
}

func NewFirestoreStockRepository(client *firestore.Client) repository.StockRepository {
	return &firestoreStockRepository{client: client}
}

func (r *firestoreStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	_, err := r.client.Collection(stocksCollection).Doc(stock.ID).Create(ctx, stock)
	if err != nil {
		return errors.Internal("Failed to create stock", err)
	}
	return nil
}

func (r *firestoreStockRepository) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	doc, err := r.client.Collection(stocksCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Stock", err)
		}
		return nil, errors.Internal("Failed to get stock", err)
	}

	var stock entity.Stock
	if err := doc.DataTo(&stock); err != nil {
		return nil, errors.Internal("Failed to parse stock data", err)
	}

	return &stock, nil
}

func (r *firestoreStockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	_, err := r.client.Collection(stocksCollection).Doc(stock.ID).Set(ctx, stock)
	if err != nil {
		return errors.Internal("Failed to update stock", err)
	}
	return nil
}

func (r *firestoreStockRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(stocksCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete stock", err)
	}
	return nil
}

func (r *firestoreStockRepository) List(ctx context.Context, limit, offset int) ([]*entity.Stock, int64, error) {
	query := r.client.Collection(stocksCollection).OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list stocks", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	stocks, err := r.collect(query.Documents(ctx))
	if err != nil {
		return nil, 0, err
	}

	return stocks, total, nil
}

func (r *firestoreStockRepository) ListByOwner(ctx context.Context, userID string) ([]*entity.Stock, error) {
	return r.collect(r.client.Collection(stocksCollection).
		Where("userId", "==", userID).
		Documents(ctx))
}

func (r *firestoreStockRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Stock, error) {
	return r.collect(r.client.Collection(stocksCollection).
		Where("supplierId", "==", supplierID).
		Documents(ctx))
}

func (r *firestoreStockRepository) ListByMaterial(ctx context.Context, materialID string) ([]*entity.Stock, error) {
	return r.collect(r.client.Collection(stocksCollection).
		Where("materialId", "==", materialID).
		Documents(ctx))
}

func (r *firestoreStockRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Stock, error) {
	var stocks []*entity.Stock
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to read stocks", err)
		}

		var stock entity.Stock
		if err := doc.DataTo(&stock); err != nil {
			return nil, errors.Internal("Failed to parse stock data", err)
		}
		stocks = append(stocks, &stock)
	}
	return stocks, nil
}
