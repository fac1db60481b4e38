package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

// Supplier documents are keyed by the owning user ID: the one-to-one
// User↔Supplier rule falls out of the document key, so concurrent
// ensure-exists calls cannot create duplicates.
type firestoreSupplierRepository struct {
	client *firestore.Client
}

func NewFirestoreSupplierRepository(client *firestore.Client) repository.SupplierRepository {
	return &firestoreSupplierRepository{client: client}
}

func syncMaterialIDs(supplier *entity.Supplier) {
	ids := make([]string, 0, len(supplier.RawMaterials))
	for _, offer := range supplier.RawMaterials {
		ids = append(ids, offer.MaterialID)
	}
	supplier.MaterialIDs = ids
}

func (r *firestoreSupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	syncMaterialIDs(supplier)
	_, err := r.client.Collection(suppliersCollection).Doc(supplier.UserID).Create(ctx, supplier)
	if err != nil {
		if IsAlreadyExists(err) {
			return errors.Conflict("Supplier already exists for this user")
		}
		return errors.Internal("Failed to create supplier", err)
	}
	return nil
}

func (r *firestoreSupplierRepository) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	iter := r.client.Collection(suppliersCollection).Where("id", "==", id).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Supplier", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query supplier", err)
	}

	var supplier entity.Supplier
	if err := doc.DataTo(&supplier); err != nil {
		return nil, errors.Internal("Failed to parse supplier data", err)
	}

	return &supplier, nil
}

func (r *firestoreSupplierRepository) GetByUserID(ctx context.Context, userID string) (*entity.Supplier, error) {
	doc, err := r.client.Collection(suppliersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Supplier", err)
		}
		return nil, errors.Internal("Failed to get supplier", err)
	}

	var supplier entity.Supplier
	if err := doc.DataTo(&supplier); err != nil {
		return nil, errors.Internal("Failed to parse supplier data", err)
	}

	return &supplier, nil
}

func (r *firestoreSupplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	syncMaterialIDs(supplier)
	_, err := r.client.Collection(suppliersCollection).Doc(supplier.UserID).Set(ctx, supplier)
	if err != nil {
		return errors.Internal("Failed to update supplier", err)
	}
	return nil
}

func (r *firestoreSupplierRepository) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, int64, error) {
	query := r.client.Collection(suppliersCollection).OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list suppliers", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var suppliers []*entity.Supplier
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list suppliers", err)
		}

		var supplier entity.Supplier
		if err := doc.DataTo(&supplier); err != nil {
			return nil, 0, errors.Internal("Failed to parse supplier data", err)
		}
		suppliers = append(suppliers, &supplier)
	}

	return suppliers, total, nil
}

func (r *firestoreSupplierRepository) ListByMaterial(ctx context.Context, materialID string) ([]*entity.Supplier, error) {
	iter := r.client.Collection(suppliersCollection).
		Where("materialIds", "array-contains", materialID).
		Documents(ctx)

	var suppliers []*entity.Supplier
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to query suppliers by material", err)
		}

		var supplier entity.Supplier
		if err := doc.DataTo(&supplier); err != nil {
			return nil, errors.Internal("Failed to parse supplier data", err)
		}
		suppliers = append(suppliers, &supplier)
	}

	return suppliers, nil
}
