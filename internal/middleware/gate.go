package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
)

// RequireAuth rejects anonymous visitors with 401.
func RequireAuth() echo.MiddlewareFunc {
	return RequireRole(func(domain.Session) bool { return true }, "")
}

// RequireRole rejects anonymous visitors with 401 and authenticated visitors
// that allowed refuses with 403 and message. The error handler turns both
// into the denied page.
func RequireRole(allowed func(domain.Session) bool, message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := auth.FromContext(c)
			if !sess.IsAuthenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please Login")
			}
			if !allowed(sess) {
				return echo.NewHTTPError(http.StatusForbidden, message)
			}
			return next(c)
		}
	}
}
