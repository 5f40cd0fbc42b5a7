package sandbox

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/view"
	"github.com/nfrund/bcard/web/src/templates/components"
	"github.com/nfrund/bcard/web/src/templates/pages"
)

// Handler serves the admin sandbox.
type Handler struct {
	users *service.Users
	pages *handlers.Pages
}

// NewHandler creates a new Handler.
func NewHandler(users *service.Users, pages *handlers.Pages) *Handler {
	return &Handler{users: users, pages: pages}
}

// List renders every user (GET /sandbox).
func (h *Handler) List(c echo.Context) error {
	sess := auth.FromContext(c)
	users, err := h.users.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return h.pages.Render(c, http.StatusOK, "Sandbox", pages.Sandbox(users, sess))
}

// ToggleBusiness flips a user's business flag (POST /sandbox/users/:id/business).
// htmx swaps the returned row in place.
func (h *Handler) ToggleBusiness(c echo.Context) error {
	sess := auth.FromContext(c)
	id := c.Param("id")
	user, err := h.users.ToggleBusiness(c.Request().Context(), sess, id)
	if err != nil {
		slog.Warn("Business toggle failed", "user_id", id, "error", err)
		if handlers.IsHTMX(c) {
			return err
		}
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to change the account type"))
		return c.Redirect(http.StatusSeeOther, "/sandbox")
	}

	if handlers.IsHTMX(c) {
		return h.pages.Fragment(c, http.StatusOK, components.UserRow(*user, sess))
	}
	view.SetFlashSuccess(c, user.Name.Full()+" is now "+user.Status())
	return c.Redirect(http.StatusSeeOther, "/sandbox")
}

// Delete removes a user (POST /sandbox/users/:id/delete).
func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.users.Delete(c.Request().Context(), auth.FromContext(c), id); err != nil {
		slog.Warn("User deletion failed", "user_id", id, "error", err)
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to delete user"))
		return c.Redirect(http.StatusSeeOther, "/sandbox")
	}
	view.SetFlashSuccess(c, "User deleted")
	return c.Redirect(http.StatusSeeOther, "/sandbox")
}
