package middleware

import (
	"net/http"
	"strings"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/auth"
	"github.com/labstack/echo/v4"
)

// Auth gates registry-mutating routes behind a valid session token. The
// authenticated username and role land in the echo context for handlers.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header is required")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header must start with Bearer")
			}

			claims, err := auth.ValidateToken(secret, tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("username", claims.Username)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
