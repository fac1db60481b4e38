package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropsight/internal/infrastructure/token"
)

const authCookieName = "token"

type AuthMiddleware struct {
	tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate resolves the session credential (cookie or bearer header) to a
// user ID and rejects the request with 401 when it is missing, invalid or
// expired.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := extractCredential(c)
		if credential == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized. Login again")
		}

		userID, err := m.tokens.Verify(credential)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", userID)
		return next(c)
	}
}

// OptionalAuthenticate sets the caller's user ID when a valid credential is
// present and otherwise continues anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := extractCredential(c)
		if credential != "" {
			if userID, err := m.tokens.Verify(credential); err == nil {
				c.Set("uid", userID)
			}
		}
		return next(c)
	}
}

func extractCredential(c echo.Context) string {
	if cookie, err := c.Cookie(authCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
