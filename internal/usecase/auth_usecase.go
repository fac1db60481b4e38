package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cropsight/internal/domain/entity"
	"cropsight/internal/domain/repository"
	"cropsight/internal/domain/service"
	"cropsight/internal/infrastructure/token"
	"cropsight/pkg/errors"
	"cropsight/pkg/logger"
)

const (
	verifyOTPTTL = 24 * time.Hour
	resetOTPTTL  = 15 * time.Minute
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
	vendorRepo   repository.VendorRepository
	tokens       *token.Manager
	mailer       service.Mailer
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	supplierRepo repository.SupplierRepository,
	vendorRepo repository.VendorRepository,
	tokens *token.Manager,
	mailer service.Mailer,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		supplierRepo: supplierRepo,
		vendorRepo:   vendorRepo,
		tokens:       tokens,
		mailer:       mailer,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role != entity.RoleSupplier && input.Role != entity.RoleVendor {
		return nil, errors.BadRequest("Role must be supplier or vendor", nil)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("User already exists")
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Each user gets their role document at registration; first access also
	// tolerates absence, see GetOrCreateForUser.
	switch input.Role {
	case entity.RoleSupplier:
		supplier := &entity.Supplier{
			ID:           uuid.New().String(),
			UserID:       user.ID,
			RawMaterials: []entity.MaterialOffer{},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.supplierRepo.Create(ctx, supplier); err != nil && !errors.Is(err, "CONFLICT") {
			return nil, err
		}
	case entity.RoleVendor:
		vendor := &entity.Vendor{
			ID:                 uuid.New().String(),
			UserID:             user.ID,
			PreferredMaterials: []string{},
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := uc.vendorRepo.Create(ctx, vendor); err != nil && !errors.Is(err, "CONFLICT") {
			return nil, err
		}
	}

	signed, err := uc.tokens.Generate(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	if err := uc.mailer.SendWelcome(ctx, user.Email, user.Name); err != nil {
		logger.Warn("Welcome mail to %s failed: %v", user.Email, err)
	}

	return &AuthResult{User: user, Token: signed}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Surfaced identically to a wrong password.
		return nil, errors.Unauthorized("Invalid credentials", fmt.Errorf("unknown email"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", fmt.Errorf("wrong password"))
	}

	signed, err := uc.tokens.Generate(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: signed}, nil
}

func (uc *AuthUseCase) SendVerifyOTP(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return errors.BadRequest("Account is already verified", nil)
	}

	otp, err := generateOTP()
	if err != nil {
		return errors.Internal("Failed to generate OTP", err)
	}

	user.VerifyOTP = otp
	user.VerifyOTPExpiry = time.Now().Add(verifyOTPTTL)
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := uc.mailer.SendVerifyOTP(ctx, user.Email, user.Name, otp); err != nil {
		logger.Warn("Verification mail to %s failed: %v", user.Email, err)
	}

	return nil
}

func (uc *AuthUseCase) VerifyEmail(ctx context.Context, userID, otp string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if otp == "" || user.VerifyOTP == "" || user.VerifyOTP != otp {
		return errors.BadRequest("Wrong OTP", nil)
	}

	if time.Now().After(user.VerifyOTPExpiry) {
		return errors.BadRequest("OTP expired", nil)
	}

	user.IsVerified = true
	user.VerifyOTP = ""
	user.VerifyOTPExpiry = time.Time{}
	user.UpdatedAt = time.Now()

	return uc.userRepo.Update(ctx, user)
}

func (uc *AuthUseCase) SendResetOTP(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return errors.Internal("Failed to generate OTP", err)
	}

	user.ResetOTP = otp
	user.ResetOTPExpiry = time.Now().Add(resetOTPTTL)
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := uc.mailer.SendResetOTP(ctx, user.Email, user.Name, otp); err != nil {
		logger.Warn("Reset mail to %s failed: %v", user.Email, err)
	}

	return nil
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if otp == "" || user.ResetOTP == "" || user.ResetOTP != otp {
		return errors.BadRequest("Wrong OTP", nil)
	}

	if time.Now().After(user.ResetOTPExpiry) {
		return errors.BadRequest("OTP expired", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	user.ResetOTP = ""
	user.ResetOTPExpiry = time.Time{}
	user.UpdatedAt = time.Now()

	return uc.userRepo.Update(ctx, user)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
