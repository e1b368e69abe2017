package middleware

import (
	"net/http"
	"strings"

	"bistro-server/internal/dto"
	"bistro-server/internal/model"
	"bistro-server/internal/repository"
	"bistro-server/internal/token"

	"github.com/labstack/echo/v4"
)

// ClaimsKey is the echo context key the authenticated claims live under.
const ClaimsKey = "auth_claims"

const (
	unauthorizedMessage = "Unauthorized Access"
	forbiddenMessage    = "Forbidden Access"
)

// ClaimsFrom returns the claims RequireAuth attached to the context, or nil
// when the route is not behind the auth stage.
func ClaimsFrom(c echo.Context) *token.Claims {
	claims, _ := c.Get(ClaimsKey).(*token.Claims)
	return claims
}

// RequireAuth is the authentication stage: it demands a valid, unexpired
// bearer token and attaches the decoded claims to the context. Missing or
// failed verification short-circuits the chain with 401.
func RequireAuth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: unauthorizedMessage})
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: unauthorizedMessage})
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: unauthorizedMessage})
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin is the authorization stage. It must be registered after
// RequireAuth: the email it looks up is trusted only because it came out of
// a verified token. No record or a non-admin role short-circuits with 403.
func RequireAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: unauthorizedMessage})
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				return err
			}
			if user == nil || user.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: forbiddenMessage})
			}

			return next(c)
		}
	}
}

// Forbidden writes the standard 403 body. Exposed for handlers that do their
// own ownership checks.
func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: forbiddenMessage})
}
