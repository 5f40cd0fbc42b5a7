package components

import (
	"github.com/nfrund/bcard/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flash renders the pending notifications.
func Flash(f view.FlashData) g.Node {
	return h.Div(
		h.ID("flash"),
		g.Map(f.Success, func(msg string) g.Node {
			return h.Div(h.Class("alert alert-success"), g.Attr("role", "status"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.Div(h.Class("alert alert-error"), g.Attr("role", "alert"), g.Text(msg))
		}),
	)
}
