package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/rendering"
	"github.com/nfrund/bcard/internal/view"
	"github.com/nfrund/bcard/web/src/templates/layouts"
	"github.com/nfrund/bcard/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// htmx request headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXBoosted    = "HX-Boosted"
	HeaderHXTarget     = "HX-Target"
	HeaderHXCurrentURL = "HX-Current-URL"
	HeaderHXRedirect   = "HX-Redirect"
	HeaderHXRefresh    = "HX-Refresh"
	HeaderHXReswap     = "HX-Reswap"
)

// Pages renders full pages inside the base layout and htmx fragments on
// their own.
type Pages struct {
	store    *auth.Store
	renderer rendering.Renderer
}

// NewPages creates a Pages renderer.
func NewPages(store *auth.Store, renderer rendering.Renderer) *Pages {
	return &Pages{store: store, renderer: renderer}
}

// Render wraps content in the base layout. Pending flash messages are
// consumed and shown.
func (p *Pages) Render(c echo.Context, status int, title string, content g.Node) error {
	pc := layouts.PageContext{
		Title:   title,
		Session: auth.FromContext(c),
		Theme:   p.store.Theme(c),
		Flash:   view.GetFlashData(c),
		Path:    c.Request().URL.Path,
	}
	return p.renderer.RenderPage(c, status, layouts.Base(pc, content))
}

// Fragment writes node without the layout.
func (p *Pages) Fragment(c echo.Context, status int, node g.Node) error {
	return p.renderer.RenderPage(c, status, node)
}

// Error renders the page for a failed request. Requests issued by htmx
// outside of boosting get a redirect or a refresh instead, so a fragment
// target never ends up holding a whole page.
func (p *Pages) Error(c echo.Context, status int, message string) error {
	if IsHTMX(c) {
		if status == http.StatusUnauthorized {
			c.Response().Header().Set(HeaderHXRedirect, "/login")
		} else {
			view.SetFlashError(c, message)
			c.Response().Header().Set(HeaderHXRefresh, "true")
			c.Response().Header().Set(HeaderHXReswap, "none")
		}
		return c.NoContent(status)
	}

	sess := auth.FromContext(c)
	switch status {
	case http.StatusNotFound:
		return p.Render(c, status, "Not Found", pages.NotFound())
	case http.StatusUnauthorized:
		return p.Render(c, status, "Page Unavailable", pages.Denied("Page Unavailable", message, true))
	case http.StatusForbidden:
		return p.Render(c, status, "Page Unavailable", pages.Denied("Page Unavailable", message, !sess.IsAuthenticated))
	default:
		return p.Render(c, status, "Error", pages.Error(message))
	}
}

// IsHTMX reports whether htmx issued the request for a fragment swap.
// Boosted navigation expects a full page and does not count.
func IsHTMX(c echo.Context) bool {
	req := c.Request()
	return req.Header.Get(HeaderHXRequest) == "true" && req.Header.Get(HeaderHXBoosted) != "true"
}

// CurrentPath is the path of the page that issued an htmx request, or "".
func CurrentPath(c echo.Context) string {
	u, err := url.Parse(c.Request().Header.Get(HeaderHXCurrentURL))
	if err != nil {
		return ""
	}
	return u.Path
}

// RedirectBack sends the visitor to the same-site page they came from, or
// to fallback.
func RedirectBack(c echo.Context, fallback string) error {
	return c.Redirect(http.StatusSeeOther, backURL(c, fallback))
}

func backURL(c echo.Context, fallback string) string {
	ref := c.Request().Referer()
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request().Host) || !strings.HasPrefix(u.Path, "/") {
		return fallback
	}
	return u.RequestURI()
}
