package middleware

import (
	"strings"

	"examhub/internal/delivery/api/response"
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/entity"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates session tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid Bearer session token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.VerifySessionToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		deliverycontext.SetSession(c, claims)

		return next(c)
	}
}

// RequireRole only lets sessions holding one of roles through. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.HasRole(c, roles...) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, message string) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), message)
}
