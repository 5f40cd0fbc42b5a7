package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/handlers"
)

// setupErrorHandling installs the error handler that turns handler errors
// into pages.
func setupErrorHandling(e *echo.Echo, pages *handlers.Pages) {
	e.HTTPErrorHandler = pages.HandleError
}
