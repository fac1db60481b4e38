package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/service"
	"cropsight/pkg/errors"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

// Create enforces email uniqueness like the Firestore implementation, which
// claims an email index document in the same transaction as the user.
func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return errors.Conflict("User already exists")
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.Conflict("User already exists")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeMaterialRepo struct {
	mu        sync.Mutex
	materials map[string]*entity.RawMaterial
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: map[string]*entity.RawMaterial{}}
}

func (r *fakeMaterialRepo) Create(ctx context.Context, material *entity.RawMaterial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *material
	r.materials[material.ID] = &clone
	return nil
}

func (r *fakeMaterialRepo) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	material, ok := r.materials[id]
	if !ok {
		return nil, errors.NotFound("Material", nil)
	}
	clone := *material
	return &clone, nil
}

func (r *fakeMaterialRepo) GetByNameAndCategory(ctx context.Context, nameLower, category string) (*entity.RawMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, material := range r.materials {
		if material.NameLower == nameLower && material.Category == category {
			clone := *material
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Material", nil)
}

func (r *fakeMaterialRepo) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.RawMaterial, 0, len(r.materials))
	for _, material := range r.materials {
		clone := *material
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeMaterialRepo) GetAllByIDs(ctx context.Context, ids []string) (map[string]*entity.RawMaterial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]*entity.RawMaterial{}
	for _, id := range ids {
		if material, ok := r.materials[id]; ok {
			clone := *material
			out[id] = &clone
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[string]*entity.Supplier // keyed by UserID
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[supplier.UserID]; ok {
		return errors.Conflict("Supplier already exists")
	}
	clone := *supplier
	r.suppliers[supplier.UserID] = &clone
	return nil
}

func (r *fakeSupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, supplier := range r.suppliers {
		if supplier.ID == id {
			clone := *supplier
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Supplier", nil)
}

func (r *fakeSupplierRepo) GetByUserID(ctx context.Context, userID string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	supplier, ok := r.suppliers[userID]
	if !ok {
		return nil, errors.NotFound("Supplier", nil)
	}
	clone := *supplier
	return &clone, nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[supplier.UserID]; !ok {
		return errors.NotFound("Supplier", nil)
	}
	clone := *supplier
	r.suppliers[supplier.UserID] = &clone
	return nil
}

func (r *fakeSupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, supplier := range r.suppliers {
		clone := *supplier
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSupplierRepo) ListByMaterial(ctx context.Context, materialID string) ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Supplier
	for _, supplier := range r.suppliers {
		for _, offer := range supplier.RawMaterials {
			if offer.MaterialID == materialID {
				clone := *supplier
				out = append(out, &clone)
				break
			}
		}
	}
	return out, nil
}

type fakeVendorRepo struct {
	mu      sync.Mutex
	vendors map[string]*entity.Vendor // keyed by UserID
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: map[string]*entity.Vendor{}}
}

func (r *fakeVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vendors[vendor.UserID]; ok {
		return errors.Conflict("Vendor already exists")
	}
	clone := *vendor
	r.vendors[vendor.UserID] = &clone
	return nil
}

func (r *fakeVendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, vendor := range r.vendors {
		if vendor.ID == id {
			clone := *vendor
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Vendor", nil)
}

func (r *fakeVendorRepo) GetByUserID(ctx context.Context, userID string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vendor, ok := r.vendors[userID]
	if !ok {
		return nil, errors.NotFound("Vendor", nil)
	}
	clone := *vendor
	return &clone, nil
}

func (r *fakeVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vendors[vendor.UserID]; !ok {
		return errors.NotFound("Vendor", nil)
	}
	clone := *vendor
	r.vendors[vendor.UserID] = &clone
	return nil
}

func (r *fakeVendorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Vendor, 0, len(r.vendors))
	for _, vendor := range r.vendors {
		clone := *vendor
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type fakeStockRepo struct {
	mu     sync.Mutex
	stocks map[string]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: map[string]*entity.Stock{}}
}

func (r *fakeStockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *stock
	r.stocks[stock.ID] = &clone
	return nil
}

func (r *fakeStockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stock, ok := r.stocks[id]
	if !ok {
		return nil, errors.NotFound("Stock", nil)
	}
	clone := *stock
	return &clone, nil
}

func (r *fakeStockRepo) Update(ctx context.Context, stock *entity.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stocks[stock.ID]; !ok {
		return errors.NotFound("Stock", nil)
	}
	clone := *stock
	r.stocks[stock.ID] = &clone
	return nil
}

func (r *fakeStockRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stocks[id]; !ok {
		return errors.NotFound("Stock", nil)
	}
	delete(r.stocks, id)
	return nil
}

func (r *fakeStockRepo) List(ctx context.Context, limit, offset int) ([]*entity.Stock, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Stock, 0, len(r.stocks))
	for _, stock := range r.stocks {
		clone := *stock
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStockRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Stock
	for _, stock := range r.stocks {
		if stock.UserID == userID {
			clone := *stock
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Stock
	for _, stock := range r.stocks {
		if stock.SupplierID == supplierID {
			clone := *stock
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListByMaterial(ctx context.Context, materialID string) ([]*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Stock
	for _, stock := range r.stocks {
		if stock.MaterialID == materialID {
			clone := *stock
			out = append(out, &clone)
		}
	}
	return out, nil
}

// fakeMailer records every send so tests can assert on outbound mail.
type fakeMailer struct {
	mu       sync.Mutex
	welcomes []string
	otps     map[string]string
	failAll  bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{otps: map[string]string{}}
}

func (m *fakeMailer) SendWelcome(ctx context.Context, to, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	m.welcomes = append(m.welcomes, to)
	return nil
}

func (m *fakeMailer) SendVerifyOTP(ctx context.Context, to, name, otp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	m.otps[to] = otp
	return nil
}

func (m *fakeMailer) SendResetOTP(ctx context.Context, to, name, otp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	m.otps[to] = otp
	return nil
}

// fakeFileService counts uploads and deletions and can be told to fail after
// a number of successful uploads.
type fakeFileService struct {
	mu        sync.Mutex
	uploads   int
	deleted   []string
	failAfter int // fail the (failAfter+1)th upload; -1 never fails
}

func newFakeFileService() *fakeFileService {
	return &fakeFileService{failAfter: -1}
}

func (s *fakeFileService) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*service.UploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAfter >= 0 && s.uploads >= s.failAfter {
		return nil, fmt.Errorf("bucket unavailable")
	}
	s.uploads++
	id := fmt.Sprintf("%s/object-%d", folder, s.uploads)
	return &service.UploadResult{
		URL:       "https://storage.example.com/" + id,
		StorageID: id,
		Size:      128,
	}, nil
}

func (s *fakeFileService) DeleteFile(ctx context.Context, storageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, storageID)
	return nil
}

func (s *fakeFileService) GetFileDetails(ctx context.Context, storageID string) (*service.FileDetails, error) {
	return &service.FileDetails{StorageID: storageID}, nil
}

func (s *fakeFileService) Close() error { return nil }
