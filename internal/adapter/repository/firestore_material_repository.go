package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

type firestoreMaterialRepository struct {
	client *firestore.Client
}

func NewFirestoreMaterialRepository(client *firestore.Client) repository.MaterialRepository {
	return &firestoreMaterialRepository{client: client}
}

func (r *firestoreMaterialRepository) Create(ctx context.Context, material *entity.RawMaterial) error {
	_, err := r.client.Collection(materialsCollection).Doc(material.ID).Create(ctx, material)
	if err != nil {
		return errors.Internal("Failed to create material", err)
	}
	return nil
}

func (r *firestoreMaterialRepository) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	doc, err := r.client.Collection(materialsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Material", err)
		}
		return nil, errors.Internal("Failed to get material", err)
	}

	var material entity.RawMaterial
	if err := doc.DataTo(&material); err != nil {
		return nil, errors.Internal("Failed to parse material data", err)
	}

	return &material, nil
}

func (r *firestoreMaterialRepository) GetByNameAndCategory(ctx context.Context, nameLower, category string) (*entity.RawMaterial, error) {
	iter := r.client.Collection(materialsCollection).
		Where("nameLower", "==", nameLower).
		Where("category", "==", category).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Material", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query material", err)
	}

	var material entity.RawMaterial
	if err := doc.DataTo(&material); err != nil {
		return nil, errors.Internal("Failed to parse material data", err)
	}

	return &material, nil
}

func (r *firestoreMaterialRepository) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	iter := r.client.Collection(materialsCollection).OrderBy("nameLower", firestore.Asc).Documents(ctx)

	var materials []*entity.RawMaterial
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list materials", err)
		}

		var material entity.RawMaterial
		if err := doc.DataTo(&material); err != nil {
			return nil, errors.Internal("Failed to parse material data", err)
		}
		materials = append(materials, &material)
	}

	return materials, nil
}

func (r *firestoreMaterialRepository) GetAllByIDs(ctx context.Context, ids []string) (map[string]*entity.RawMaterial, error) {
	result := make(map[string]*entity.RawMaterial, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	// Firestore batch gets are capped, fetch in chunks of 30.
	for i := 0; i < len(ids); i += 30 {
		end := i + 30
		if end > len(ids) {
			end = len(ids)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range ids[i:end] {
			refs = append(refs, r.client.Collection(materialsCollection).Doc(id))
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch materials", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var material entity.RawMaterial
			if err := doc.DataTo(&material); err != nil {
				continue
			}
			result[doc.Ref.ID] = &material
		}
	}

	return result, nil
}
