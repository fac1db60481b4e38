package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"cropsight/internal/domain/entity"
	"cropsight/internal/infrastructure/token"
	"cropsight/pkg/errors"
)

func newAuthFixture() (*AuthUseCase, *fakeUserRepo, *fakeSupplierRepo, *fakeVendorRepo, *fakeMailer) {
	userRepo := newFakeUserRepo()
	supplierRepo := newFakeSupplierRepo()
	vendorRepo := newFakeVendorRepo()
	mailer := newFakeMailer()
	tokens := token.NewManager("test-secret", 3600)
	uc := NewAuthUseCase(userRepo, supplierRepo, vendorRepo, tokens, mailer)
	return uc, userRepo, supplierRepo, vendorRepo, mailer
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _, supplierRepo, _, mailer := newAuthFixture()
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter2hunter2",
		Role:     entity.RoleSupplier,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, entity.RoleSupplier, result.User.Role)
	assert.False(t, result.User.IsVerified)

	// The role document is created alongside the account.
	supplier, err := supplierRepo.GetByUserID(ctx, result.User.ID)
	assert.NoError(t, err)
	assert.Empty(t, supplier.RawMaterials)

	assert.Contains(t, mailer.welcomes, "asha@example.com")

	login, err := uc.Login(ctx, "asha@example.com", "hunter2hunter2")
	assert.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "hunter2hunter2", Role: entity.RoleVendor})
	assert.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{Name: "Other", Email: "asha@example.com", Password: "different-pass", Role: entity.RoleSupplier})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateUserDuplicateEmailConflict(t *testing.T) {
	// The uniqueness guarantee lives in the repository, not in the
	// check-then-create lookup: a second create for the same address fails
	// even when it raced past GetByEmail.
	repo := newFakeUserRepo()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &entity.User{ID: "user-a", Email: "asha@example.com"}))

	err := repo.Create(ctx, &entity.User{ID: "user-b", Email: "asha@example.com"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRegisterInvalidRole(t *testing.T) {
	uc, _, _, _, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), RegisterInput{Name: "Asha", Email: "a@example.com", Password: "hunter2hunter2", Role: "admin"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterSucceedsWhenMailFails(t *testing.T) {
	uc, _, _, _, mailer := newAuthFixture()
	mailer.failAll = true

	result, err := uc.Register(context.Background(), RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "hunter2hunter2", Role: entity.RoleVendor})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "hunter2hunter2", Role: entity.RoleVendor})
	assert.NoError(t, err)

	_, err = uc.Login(ctx, "asha@example.com", "wrong-password")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyEmailFlow(t *testing.T) {
	uc, userRepo, _, _, mailer := newAuthFixture()
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "hunter2hunter2", Role: entity.RoleVendor})
	assert.NoError(t, err)

	assert.NoError(t, uc.SendVerifyOTP(ctx, result.User.ID))
	otp := mailer.otps["asha@example.com"]
	assert.Len(t, otp, 6)

	// Wrong code first.
	err = uc.VerifyEmail(ctx, result.User.ID, "000000")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	assert.NoError(t, uc.VerifyEmail(ctx, result.User.ID, otp))

	user, err := userRepo.GetByID(ctx, result.User.ID)
	assert.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerifyOTP)

	// Re-requesting an OTP for a verified account is rejected.
	err = uc.SendVerifyOTP(ctx, result.User.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestVerifyEmailExpiredOTP(t *testing.T) {
	uc, userRepo, _, _, mailer := newAuthFixture()
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "hunter2hunter2", Role: entity.RoleVendor})
	assert.NoError(t, err)
	assert.NoError(t, uc.SendVerifyOTP(ctx, result.User.ID))

	user, _ := userRepo.GetByID(ctx, result.User.ID)
	user.VerifyOTPExpiry = time.Now().Add(-time.Minute)
	assert.NoError(t, userRepo.Update(ctx, user))

	err = uc.VerifyEmail(ctx, result.User.ID, mailer.otps["asha@example.com"])
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestResetPasswordFlow(t *testing.T) {
	uc, userRepo, _, _, mailer := newAuthFixture()
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "hunter2hunter2", Role: entity.RoleVendor})
	assert.NoError(t, err)

	assert.NoError(t, uc.SendResetOTP(ctx, "asha@example.com"))
	otp := mailer.otps["asha@example.com"]

	assert.NoError(t, uc.ResetPassword(ctx, "asha@example.com", otp, "new-password-1"))

	user, err := userRepo.GetByID(ctx, result.User.ID)
	assert.NoError(t, err)
	assert.Empty(t, user.ResetOTP)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password-1")))

	// The consumed OTP cannot be replayed.
	err = uc.ResetPassword(ctx, "asha@example.com", otp, "another-password")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Login(ctx, "asha@example.com", "new-password-1")
	assert.NoError(t, err)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	uc, _, _, _, _ := newAuthFixture()

	err := uc.SendResetOTP(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
