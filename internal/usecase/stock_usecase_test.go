package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cropsight/internal/domain/entity"
	"cropsight/pkg/errors"
)

type stockFixture struct {
	uc       *StockUseCase
	files    *fakeFileService
	supplier *entity.Supplier
	material *entity.RawMaterial
}

func newStockFixture(t *testing.T) *stockFixture {
	ctx := context.Background()
	stockRepo := newFakeStockRepo()
	supplierRepo := newFakeSupplierRepo()
	materialRepo := newFakeMaterialRepo()
	files := newFakeFileService()

	now := time.Now()
	supplier := &entity.Supplier{ID: "supplier-1", UserID: "user-1", CreatedAt: now, UpdatedAt: now}
	assert.NoError(t, supplierRepo.Create(ctx, supplier))

	material := &entity.RawMaterial{ID: "material-1", Name: "Tomato", NameLower: "tomato", Unit: "kg", Category: "vegetable", CreatedAt: now}
	assert.NoError(t, materialRepo.Create(ctx, material))

	return &stockFixture{
		uc:       NewStockUseCase(stockRepo, supplierRepo, materialRepo, files),
		files:    files,
		supplier: supplier,
		material: material,
	}
}

func validStockInput(f *stockFixture) CreateStockInput {
	return CreateStockInput{
		SupplierID:   f.supplier.ID,
		MaterialID:   f.material.ID,
		Quantity:     50,
		Price:        20,
		Description:  "fresh harvest",
		Location:     entity.StockLocation{City: "Nashik", State: "Maharashtra", Pincode: "422001"},
		Availability: true,
	}
}

func TestCreateStockWithImages(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	images := []ImageUpload{
		{Content: strings.NewReader("img-a"), ContentType: "image/jpeg", AltText: "crate"},
		{Content: strings.NewReader("img-b"), ContentType: "image/png"},
	}

	stock, err := f.uc.Create(ctx, "user-1", validStockInput(f), images)
	assert.NoError(t, err)
	assert.Len(t, stock.Images, 2)
	assert.Equal(t, "crate", stock.Images[0].AltText)
	assert.Equal(t, "A", stock.QualityGrade)
	assert.NotEmpty(t, stock.ID)
}

func TestCreateStockUnknownSupplier(t *testing.T) {
	f := newStockFixture(t)

	input := validStockInput(f)
	input.SupplierID = "missing-supplier"

	_, err := f.uc.Create(context.Background(), "user-1", input, nil)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateStockInvalidGrade(t *testing.T) {
	f := newStockFixture(t)

	input := validStockInput(f)
	input.QualityGrade = "D"

	_, err := f.uc.Create(context.Background(), "user-1", input, nil)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateStockUploadFailureRollsBack(t *testing.T) {
	f := newStockFixture(t)
	f.files.failAfter = 1 // second upload fails

	images := []ImageUpload{
		{Content: strings.NewReader("img-a"), ContentType: "image/jpeg"},
		{Content: strings.NewReader("img-b"), ContentType: "image/jpeg"},
	}

	_, err := f.uc.Create(context.Background(), "user-1", validStockInput(f), images)
	assert.True(t, errors.Is(err, "UPSTREAM_ERROR"))

	// The one stored object was cleaned up.
	assert.Len(t, f.files.deleted, 1)
}

func TestUpdateStockOwnershipEnforced(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	stock, err := f.uc.Create(ctx, "user-1", validStockInput(f), nil)
	assert.NoError(t, err)

	price := 99.0
	_, err = f.uc.Update(ctx, "user-2", stock.ID, UpdateStockInput{Price: &price}, nil)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestUpdateStockReplacesImagesOnlyWhenProvided(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	stock, err := f.uc.Create(ctx, "user-1", validStockInput(f), []ImageUpload{
		{Content: strings.NewReader("img-a"), ContentType: "image/jpeg"},
	})
	assert.NoError(t, err)
	originalStorageID := stock.Images[0].StorageID

	// Field-only update keeps the image set.
	price := 25.0
	updated, err := f.uc.Update(ctx, "user-1", stock.ID, UpdateStockInput{Price: &price}, nil)
	assert.NoError(t, err)
	assert.Equal(t, originalStorageID, updated.Images[0].StorageID)
	assert.Equal(t, 25.0, updated.Price)

	// Sending new images replaces and deletes the old set.
	updated, err = f.uc.Update(ctx, "user-1", stock.ID, UpdateStockInput{}, []ImageUpload{
		{Content: strings.NewReader("img-b"), ContentType: "image/png"},
	})
	assert.NoError(t, err)
	assert.Len(t, updated.Images, 1)
	assert.NotEqual(t, originalStorageID, updated.Images[0].StorageID)
	assert.Contains(t, f.files.deleted, originalStorageID)
}

func TestDeleteStockOwnershipAndCleanup(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	stock, err := f.uc.Create(ctx, "user-1", validStockInput(f), []ImageUpload{
		{Content: strings.NewReader("img-a"), ContentType: "image/jpeg"},
	})
	assert.NoError(t, err)

	err = f.uc.Delete(ctx, "user-2", stock.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	assert.NoError(t, f.uc.Delete(ctx, "user-1", stock.ID))
	assert.Contains(t, f.files.deleted, stock.Images[0].StorageID)

	_, err = f.uc.GetByID(ctx, stock.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetStockResolvesMaterial(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	stock, err := f.uc.Create(ctx, "user-1", validStockInput(f), nil)
	assert.NoError(t, err)

	detail, err := f.uc.GetByID(ctx, stock.ID)
	assert.NoError(t, err)
	assert.NotNil(t, detail.Material)
	assert.Equal(t, "Tomato", detail.Material.Name)
}

func TestListStocksByMaterial(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, "user-1", validStockInput(f), nil)
	assert.NoError(t, err)

	stocks, err := f.uc.ListByMaterial(ctx, f.material.ID)
	assert.NoError(t, err)
	assert.Len(t, stocks, 1)

	stocks, err = f.uc.ListByMaterial(ctx, "other-material")
	assert.NoError(t, err)
	assert.Empty(t, stocks)
}
