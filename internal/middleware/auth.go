package middleware

import (
	"errors"
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/auth"
	"manufacturer-backend/internal/repository"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const emailContextKey = "authEmail"

// EmailFromContext returns the verified caller email set by RequireToken.
func EmailFromContext(c echo.Context) string {
	email, _ := c.Get(emailContextKey).(string)
	return email
}

// RequireToken rejects requests without an Authorization header (401)
// or with a token that does not verify (403). On success the email
// claim is attached to the request context.
func RequireToken(tokens *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperr.Unauthorized("unauthorized access")
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return apperr.Forbidden("forbidden access")
			}

			email, err := tokens.Verify(tokenString)
			if err != nil {
				return apperr.Forbidden("forbidden access")
			}

			c.Set(emailContextKey, email)
			return next(c)
		}
	}
}

// RequireAdmin permits continuation only when the verified caller's
// user record carries the admin role. A missing record is forbidden,
// not a fault. Must run after RequireToken.
func RequireAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := EmailFromContext(c)
			if email == "" {
				return apperr.Forbidden("forbidden access")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Forbidden("forbidden access")
			}
			if err != nil {
				return err
			}
			if user.Role != "admin" {
				return apperr.Forbidden("forbidden access")
			}

			return next(c)
		}
	}
}
