package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is shown for unknown paths and missing records.
func NotFound() g.Node {
	return h.Section(
		h.Class("page status-page"),
		h.H1(g.Text("404")),
		h.P(h.Class("lead"), g.Text("Page Not Found")),
		h.A(h.Class("btn primary"), h.Href("/"), g.Text("Back to home")),
	)
}

// Denied explains why a page is unavailable.
func Denied(heading, message string, showLogin bool) g.Node {
	return h.Section(
		h.Class("page status-page"),
		h.H1(g.Text(heading)),
		h.P(h.Class("lead"), g.Text(message)),
		g.If(showLogin, h.A(h.Class("btn primary"), h.Href("/login"), g.Text("Login"))),
		h.A(h.Class("btn"), h.Href("/"), g.Text("Back to home")),
	)
}

// Error is the generic failure page.
func Error(message string) g.Node {
	return h.Section(
		h.Class("page status-page"),
		h.H1(g.Text("Something went wrong")),
		h.P(h.Class("lead"), g.Text(message)),
		h.A(h.Class("btn"), h.Href("/"), g.Text("Back to home")),
	)
}
