package profile

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/validation"
	"github.com/nfrund/bcard/internal/view"
	"github.com/nfrund/bcard/web/src/templates/pages"
)

// Handler serves the profile page.
type Handler struct {
	users *service.Users
	store *auth.Store
	pages *handlers.Pages
}

// NewHandler creates a new Handler.
func NewHandler(users *service.Users, store *auth.Store, pages *handlers.Pages) *Handler {
	return &Handler{users: users, store: store, pages: pages}
}

// Get renders the account with its edit form (GET /profile).
func (h *Handler) Get(c echo.Context) error {
	user, err := h.users.Profile(c.Request().Context(), auth.FromContext(c))
	if err != nil {
		return err
	}
	form := validation.ProfileFormFrom(domain.ProfileFromUser(*user))
	return h.pages.Render(c, http.StatusOK, "Profile", pages.Profile(*user, form, nil))
}

// Update saves the edited profile (POST /profile).
func (h *Handler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	sess := auth.FromContext(c)
	form := validation.BindProfile(c)

	if errs := validation.Errors(c.Validate(form)); errs != nil {
		user, err := h.users.Profile(ctx, sess)
		if err != nil {
			return err
		}
		return h.pages.Render(c, http.StatusUnprocessableEntity, "Profile", pages.Profile(*user, form, errs))
	}

	user, err := h.users.UpdateProfile(ctx, sess, form.Input())
	if err != nil {
		slog.Warn("Profile update failed", "user_id", sess.UserID(), "error", err)
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to update profile"))
		return c.Redirect(http.StatusSeeOther, "/profile")
	}

	slog.Info("Profile updated", "user_id", user.ID)
	view.SetFlashSuccess(c, "Profile updated")
	return c.Redirect(http.StatusSeeOther, "/profile")
}

// Delete removes the account and logs out (POST /profile/delete).
func (h *Handler) Delete(c echo.Context) error {
	sess := auth.FromContext(c)
	if err := h.users.DeleteAccount(c.Request().Context(), sess); err != nil {
		slog.Warn("Account deletion failed", "user_id", sess.UserID(), "error", err)
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to delete account"))
		return c.Redirect(http.StatusSeeOther, "/profile")
	}

	h.store.Logout(c)
	view.SetFlashSuccess(c, "Your account was deleted")
	return c.Redirect(http.StatusSeeOther, "/")
}
