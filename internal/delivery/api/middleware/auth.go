package middleware

import (
	"strings"

	deliverycontext "farmnaturals/internal/delivery/context"
	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// AuthMiddleware guards routes behind a bearer credential and a capability.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// RequireCapability rejects requests whose credential is missing or invalid (401) or whose
// principal lacks the capability (403). The principal is stored on the echo context.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return domainerrors.ErrInvalidToken.WithDetails("Authorization header must be a Bearer token")
			}

			principal, err := m.identity.Authorize(c.Request().Context(), credential, capability)
			if err != nil {
				return err
			}

			deliverycontext.SetPrincipal(c, principal)

			return next(c)
		}
	}
}

// bearerToken extracts the token of a "Bearer <token>" header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
