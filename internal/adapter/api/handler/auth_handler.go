package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropsight/internal/usecase"
	"cropsight/pkg/errors"
	"cropsight/pkg/response"
)

const authCookieName = "token"

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	cookieTTL   time.Duration
}

// The cookie lives exactly as long as the token it carries.
func NewAuthHandler(authUseCase *usecase.AuthUseCase, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieTTL:   cookieTTL,
	}
}

type registerRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=2"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Role     string `json:"role" form:"role" validate:"required,oneof=supplier vendor"`
}

// Role is required for surface parity with the registration form; the
// credential check itself does not branch on it.
type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"required,oneof=supplier vendor"`
}

type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookie(c, result.Token)

	return response.Created(c, map[string]interface{}{
		"token": result.Token,
		"user": userResponse{
			ID:         result.User.ID,
			Name:       result.User.Name,
			Email:      result.User.Email,
			Role:       result.User.Role,
			IsVerified: result.User.IsVerified,
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookie(c, result.Token)

	return response.SuccessMessage(c, "Login successful", map[string]interface{}{
		"token": result.Token,
		"user": userResponse{
			ID:         result.User.ID,
			Name:       result.User.Name,
			Email:      result.User.Email,
			Role:       result.User.Role,
			IsVerified: result.User.IsVerified,
		},
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearAuthCookie(c)
	return response.SuccessMessage(c, "Logged out", nil)
}

func (h *AuthHandler) SendVerifyOTP(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.authUseCase.SendVerifyOTP(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Verification OTP sent on email", nil)
}

func (h *AuthHandler) VerifyAccount(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req struct {
		OTP string `json:"otp" form:"otp" validate:"required,len=6"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.VerifyEmail(c.Request().Context(), userID, req.OTP); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Email verified successfully", nil)
}

func (h *AuthHandler) SendResetOTP(c echo.Context) error {
	var req struct {
		Email string `json:"email" form:"email" validate:"required,email"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.SendResetOTP(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Password reset OTP sent on email", nil)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Email       string `json:"email" form:"email" validate:"required,email"`
		OTP         string `json:"otp" form:"otp" validate:"required,len=6"`
		NewPassword string `json:"newPassword" form:"newPassword" validate:"required,min=8"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing details", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Password has been reset successfully", nil)
}

func (h *AuthHandler) IsAuthenticated(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}
	return response.Success(c, map[string]string{"user_id": userID})
}

// The credential travels in an http-only cookie so browser scripts never see
// it; SameSite=None + Secure because the SPA is served from another origin.
func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
