package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cropsight/internal/domain/entity"
	"cropsight/pkg/errors"
)

func newVendorFixture(t *testing.T) (*VendorUseCase, *fakeVendorRepo, *entity.RawMaterial) {
	vendorRepo := newFakeVendorRepo()
	materialRepo := newFakeMaterialRepo()

	material := &entity.RawMaterial{
		ID:        "material-1",
		Name:      "Tomato",
		NameLower: "tomato",
		Unit:      "kg",
		Category:  "vegetable",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, materialRepo.Create(context.Background(), material))

	return NewVendorUseCase(vendorRepo, materialRepo), vendorRepo, material
}

func TestAddPreferenceIdempotent(t *testing.T) {
	uc, _, material := newVendorFixture(t)
	ctx := context.Background()

	vendor, err := uc.GetOrCreateForUser(ctx, "user-1")
	assert.NoError(t, err)

	updated, err := uc.AddPreference(ctx, "user-1", vendor.ID, material.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{material.ID}, updated.PreferredMaterials)

	// Preferring again is a no-op.
	again, err := uc.AddPreference(ctx, "user-1", vendor.ID, material.ID)
	assert.NoError(t, err)
	assert.Len(t, again.PreferredMaterials, 1)
}

func TestAddPreferenceUnknownMaterial(t *testing.T) {
	uc, _, _ := newVendorFixture(t)
	ctx := context.Background()

	vendor, err := uc.GetOrCreateForUser(ctx, "user-1")
	assert.NoError(t, err)

	_, err = uc.AddPreference(ctx, "user-1", vendor.ID, "missing-material")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestAddPreferenceForeignVendor(t *testing.T) {
	uc, _, material := newVendorFixture(t)
	ctx := context.Background()

	vendor, err := uc.GetOrCreateForUser(ctx, "user-1")
	assert.NoError(t, err)

	_, err = uc.AddPreference(ctx, "user-2", vendor.ID, material.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestRemovePreferenceIdempotent(t *testing.T) {
	uc, _, material := newVendorFixture(t)
	ctx := context.Background()

	vendor, err := uc.GetOrCreateForUser(ctx, "user-1")
	assert.NoError(t, err)

	_, err = uc.AddPreference(ctx, "user-1", vendor.ID, material.ID)
	assert.NoError(t, err)

	updated, err := uc.RemovePreference(ctx, "user-1", vendor.ID, material.ID)
	assert.NoError(t, err)
	assert.Empty(t, updated.PreferredMaterials)

	// Removing an absent preference still succeeds.
	_, err = uc.RemovePreference(ctx, "user-1", vendor.ID, material.ID)
	assert.NoError(t, err)
}

func TestGetVendorResolvesPreferredMaterials(t *testing.T) {
	uc, _, material := newVendorFixture(t)
	ctx := context.Background()

	vendor, err := uc.GetOrCreateForUser(ctx, "user-1")
	assert.NoError(t, err)

	_, err = uc.AddPreference(ctx, "user-1", vendor.ID, material.ID)
	assert.NoError(t, err)

	detail, err := uc.GetByID(ctx, vendor.ID)
	assert.NoError(t, err)
	assert.Len(t, detail.PreferredMaterials, 1)
	assert.Equal(t, "Tomato", detail.PreferredMaterials[0].Name)
}
