package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/validation"
	"github.com/nfrund/bcard/internal/view"
	"github.com/nfrund/bcard/web/src/templates/pages"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	users *service.Users
	store *auth.Store
	pages *Pages
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *service.Users, store *auth.Store, pages *Pages) *AuthHandler {
	return &AuthHandler{
		users: users,
		store: store,
		pages: pages,
	}
}

// LoginGet renders the login form (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	if auth.FromContext(c).IsAuthenticated {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.pages.Render(c, http.StatusOK, "Login", pages.Login(validation.LoginForm{}, nil))
}

// LoginPost exchanges the submitted credentials for a token (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	form := validation.BindLogin(c)
	if errs := validation.Errors(c.Validate(form)); errs != nil {
		form.Password = ""
		return h.pages.Render(c, http.StatusUnprocessableEntity, "Login", pages.Login(form, errs))
	}

	token, err := h.users.Login(c.Request().Context(), form.Credentials())
	if err != nil {
		slog.Info("Login rejected", "email", form.Email, "error", err)
		return h.loginFailed(c, form, err)
	}
	if _, err := h.store.Login(c, token); err != nil {
		slog.Error("Login returned an unusable token", "error", err)
		return h.loginFailed(c, form, err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) loginFailed(c echo.Context, form validation.LoginForm, err error) error {
	view.SetFlashError(c, UserMessage(err, "Login failed"))
	form.Password = ""
	return h.pages.Render(c, FailedStatus(err), "Login", pages.Login(form, nil))
}

// RegisterGet renders the sign-up form (GET /register).
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	if auth.FromContext(c).IsAuthenticated {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.pages.Render(c, http.StatusOK, "Register", pages.Register(validation.RegisterForm{}, nil))
}

// RegisterPost creates the account and logs the new user in (POST /register).
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	form := validation.BindRegister(c)
	if errs := validation.Errors(c.Validate(form)); errs != nil {
		form.Password = ""
		return h.pages.Render(c, http.StatusUnprocessableEntity, "Register", pages.Register(form, errs))
	}

	token, err := h.users.Register(c.Request().Context(), form.Input())
	if err != nil {
		slog.Info("Registration rejected", "email", form.Email, "error", err)
		view.SetFlashError(c, UserMessage(err, "Registration failed"))
		form.Password = ""
		return h.pages.Render(c, FailedStatus(err), "Register", pages.Register(form, nil))
	}

	view.SetFlashSuccess(c, "Registration successful")
	if _, err := h.store.Login(c, token); err != nil {
		slog.Error("Registration returned an unusable token", "error", err)
		view.SetFlashError(c, "Please log in with your new account")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout forgets the token (POST /logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Logout(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
