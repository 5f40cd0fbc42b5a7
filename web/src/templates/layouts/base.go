package layouts

import (
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/view"
	"github.com/nfrund/bcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Error pages carry their own status; htmx must still swap them in.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"...","swap":true}]}`

// PageContext is what every page layout needs besides its content.
type PageContext struct {
	Title   string
	Session domain.Session
	Theme   string
	Flash   view.FlashData
	// Path is the request path, used to highlight the active nav link.
	Path string
}

// Base wraps content in the full HTML document: navbar, notifications and footer.
func Base(pc PageContext, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.Attr("data-theme", themeOrDefault(pc.Theme)),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
				g.El("title", g.Text(CalculateTitle(pc.Title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
				h.Script(h.Src(htmxSrc), g.Attr("defer")),
			),
			h.Body(
				h.Class("theme-"+themeOrDefault(pc.Theme)),
				hx.Boost("true"),
				Navbar(pc),
				h.Main(
					h.Class("container"),
					components.Flash(pc.Flash),
					content,
				),
				components.Footer(),
			),
		),
	)
}

// Navbar renders the links the session's role may use.
func Navbar(pc PageContext) g.Node {
	return h.Nav(
		h.Class("navbar"),
		h.A(h.Class("brand"), h.Href("/"), g.Text("BCard")),
		h.Ul(
			h.Class("nav-links"),
			g.Map(auth.NavItems(pc.Session), func(item auth.NavItem) g.Node {
				return navLink(item, pc.Path)
			}),
		),
		g.El("form",
			h.Class("search"),
			h.Method("get"),
			h.Action("/"),
			h.Input(h.Type("search"), h.Name("q"), h.Placeholder("Search")),
		),
		g.El("form",
			h.Class("theme-toggle"),
			h.Method("post"),
			h.Action("/theme"),
			h.Button(h.Type("submit"), g.Attr("aria-label", "Toggle theme"), g.Text(themeIcon(pc.Theme))),
		),
		h.Ul(
			h.Class("nav-account"),
			g.Map(auth.AccountItems(pc.Session), func(item auth.NavItem) g.Node {
				return navLink(item, pc.Path)
			}),
			g.If(pc.Session.IsAuthenticated,
				h.Li(
					g.El("form",
						h.Method("post"),
						h.Action("/logout"),
						h.Button(h.Type("submit"), h.Class("link"), g.Text("Logout")),
					),
				),
			),
		),
	)
}

func navLink(item auth.NavItem, path string) g.Node {
	return h.Li(
		h.A(
			h.Href(item.Href),
			g.If(item.Href == path, h.Class("active")),
			g.Text(item.Label),
		),
	)
}

func themeOrDefault(theme string) string {
	if theme == auth.ThemeDark {
		return auth.ThemeDark
	}
	return auth.ThemeLight
}

func themeIcon(theme string) string {
	if theme == auth.ThemeDark {
		return "☀"
	}
	return "☾"
}
