package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

// Vendor documents are keyed by the owning user ID, same rationale as the
// supplier repository.
type firestoreVendorRepository struct {
	client *firestore.Client
}

func NewFirestoreVendorRepository(client *firestore.Client) repository.VendorRepository {
	return &firestoreVendorRepository{client: client}
}

func (r *firestoreVendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	_, err := r.client.Collection(vendorsCollection).Doc(vendor.UserID).Create(ctx, vendor)
	if err != nil {
		if IsAlreadyExists(err) {
			return errors.Conflict("Vendor already exists for this user")
		}
		return errors.Internal("Failed to create vendor", err)
	}
	return nil
}

func (r *firestoreVendorRepository) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	iter := r.client.Collection(vendorsCollection).Where("id", "==", id).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Vendor", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query vendor", err)
	}

	var vendor entity.Vendor
	if err := doc.DataTo(&vendor); err != nil {
		return nil, errors.Internal("Failed to parse vendor data", err)
	}

	return &vendor, nil
}

func (r *firestoreVendorRepository) GetByUserID(ctx context.Context, userID string) (*entity.Vendor, error) {
	doc, err := r.client.Collection(vendorsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Vendor", err)
		}
		return nil, errors.Internal("Failed to get vendor", err)
	}

	var vendor entity.Vendor
	if err := doc.DataTo(&vendor); err != nil {
		return nil, errors.Internal("Failed to parse vendor data", err)
	}

	return &vendor, nil
}

func (r *firestoreVendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	_, err := r.client.Collection(vendorsCollection).Doc(vendor.UserID).Set(ctx, vendor)
	if err != nil {
		return errors.Internal("Failed to update vendor", err)
	}
	return nil
}

func (r *firestoreVendorRepository) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, int64, error) {
	query := r.client.Collection(vendorsCollection).OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list vendors", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var vendors []*entity.Vendor
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list vendors", err)
		}

		var vendor entity.Vendor
		if err := doc.DataTo(&vendor); err != nil {
			return nil, 0, errors.Internal("Failed to parse vendor data", err)
		}
		vendors = append(vendors, &vendor)
	}

	return vendors, total, nil
}
