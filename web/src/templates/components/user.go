package components

import (
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// UserRowID is the DOM id of a sandbox row.
func UserRowID(userID string) string {
	return "user-" + userID
}

// UserRow renders one sandbox row. Admin accounts get no actions.
func UserRow(u domain.User, sess domain.Session) g.Node {
	actionable := auth.CanModifyUser(sess, u)
	return h.Tr(
		h.ID(UserRowID(u.ID)),
		h.Td(g.Text(u.Name.Full())),
		h.Td(g.Text(u.Email)),
		h.Td(g.Text(u.Phone)),
		h.Td(h.Class("status"), g.Text(u.Status())),
		h.Td(
			h.Class("actions"),
			g.If(actionable, g.Group{
				g.El("form",
					h.Method("post"),
					h.Action("/sandbox/users/"+u.ID+"/business"),
					hx.Post("/sandbox/users/"+u.ID+"/business"),
					hx.Target("#"+UserRowID(u.ID)),
					hx.Swap("outerHTML"),
					h.Button(h.Type("submit"), h.Class("btn"), g.Text(businessLabel(u))),
				),
				g.El("form",
					h.Method("post"),
					h.Action("/sandbox/users/"+u.ID+"/delete"),
					hx.Confirm("Are you sure you want to delete this user?"),
					h.Button(h.Type("submit"), h.Class("btn danger"), g.Text("Delete")),
				),
			}),
			g.If(!actionable, h.Span(h.Class("muted"), g.Text("Not available"))),
		),
	)
}

func businessLabel(u domain.User) string {
	if u.IsBusiness {
		return "Make Normal"
	}
	return "Make Business"
}
