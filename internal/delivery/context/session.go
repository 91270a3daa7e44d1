package context

import (
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetSession stores the verified session claims of the caller.
func SetSession(c echo.Context, claims *service.SessionClaims) {
	c.Set(string(keySession), claims)
}

// GetSession returns the session claims stored by the auth middleware.
func GetSession(c echo.Context) (*service.SessionClaims, bool) {
	claims, ok := c.Get(string(keySession)).(*service.SessionClaims)

	return claims, ok && claims != nil
}

// GetAccountID returns the id of the authenticated account.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := GetSession(c)
	if !ok {
		return uuid.Nil, false
	}

	return claims.AccountID, true
}

// HasRole reports whether the authenticated session carries one of roles.
func HasRole(c echo.Context, roles ...entity.Role) bool {
	claims, ok := GetSession(c)
	if !ok {
		return false
	}

	return entity.Roles(roles).Contains(claims.Role)
}
