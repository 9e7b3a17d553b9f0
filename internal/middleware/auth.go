package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rihla/customer-queries/internal/auth"
)

const identityContextKey = "identity"

// Authorize verifies the bearer token and attaches the resolved identity
// to the request context. A missing or invalid token is a definite 401 -
// there is no pending state a client could mistake for logged-out
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get("Authorization")
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(identityContextKey, claims.Identity())
			return next(c)
		}
	}
}

// IdentityFromContext reads the identity Authorize attached earlier
func IdentityFromContext(c echo.Context) auth.Identity {
	if idn, ok := c.Get(identityContextKey).(auth.Identity); ok {
		return idn
	}
	return auth.Identity{}
}
