package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/auth"
)

// Session derives the visitor's session from the cookie store and makes it
// available to handlers. The token is attached to the request context so
// remote API calls authenticate as the visitor. It must run after the
// echo-contrib session middleware.
func Session(store *auth.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := store.Load(c)
			auth.SetSession(c, sess)
			if sess.IsAuthenticated {
				ctx := apiclient.WithToken(c.Request().Context(), store.Token(c))
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
