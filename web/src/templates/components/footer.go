package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer is the site footer.
func Footer() g.Node {
	return h.Footer(
		h.Class("footer"),
		h.A(h.Href("/about"), g.Text("About")),
		h.Span(g.Text("BCard · business cards directory")),
	)
}
