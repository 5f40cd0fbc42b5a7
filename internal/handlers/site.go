package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/web/src/templates/pages"
)

// SiteHandler serves the pages that need no remote data.
type SiteHandler struct {
	store *auth.Store
	pages *Pages
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(store *auth.Store, pages *Pages) *SiteHandler {
	return &SiteHandler{store: store, pages: pages}
}

// AboutGet renders the about page.
func (h *SiteHandler) AboutGet(c echo.Context) error {
	return h.pages.Render(c, http.StatusOK, "About", pages.About())
}

// ThemePost flips between the light and dark theme and returns to the
// current page.
func (h *SiteHandler) ThemePost(c echo.Context) error {
	h.store.ToggleTheme(c)
	return RedirectBack(c, "/")
}

// Health reports liveness.
func (h *SiteHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
