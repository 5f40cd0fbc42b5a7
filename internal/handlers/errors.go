package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/apiclient"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/middleware"
)

// HandleError is the echo error handler. It renders the error page for err,
// and logs errors nobody anticipated with a stack trace.
func (p *Pages) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := middleware.FromContext(c.Request().Context())

	status, message := Status(err)
	var he *echo.HTTPError
	switch {
	case status == http.StatusInternalServerError && !errors.As(err, &he):
		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		message = "Something unexpected happened. Please try again."
	case status >= http.StatusInternalServerError:
		logger.Warn("Request failed", "status", status, "error", err)
	default:
		logger.Debug("Request refused", "status", status, "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	if rerr := p.Error(c, status, message); rerr != nil {
		slog.Error("Failed to render error page", "error", rerr, "status", status)
		if !c.Response().Committed {
			_ = c.String(status, message)
		}
	}
}

// Status maps err onto the response status and the message shown to the
// visitor. Errors it does not recognise map to 500 with an empty message.
func Status(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && s != "" {
			msg = s
		} else if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
		return he.Code, msg
	}

	var apiErr *apiclient.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, apiclient.Message(err, "Page Not Found")
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Please Login"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, apiclient.Message(err, "You are not allowed to do that")
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, apiclient.Message(err, "The request was not valid")
	case errors.Is(err, domain.ErrUnavailable), errors.As(err, &apiErr):
		return http.StatusBadGateway, apiclient.Message(err, "The card service is unavailable, please try again")
	}
	return http.StatusInternalServerError, ""
}

// UserMessage is the notification text for a failed action.
func UserMessage(err error, fallback string) string {
	if errors.Is(err, domain.ErrUnauthorized) {
		fallback = "Please Login"
	}
	return apiclient.Message(err, fallback)
}

// FailedStatus is the status for re-rendering a form after the remote API
// refused the submission.
func FailedStatus(err error) int {
	status, _ := Status(err)
	if status == http.StatusInternalServerError {
		return http.StatusBadGateway
	}
	return status
}
