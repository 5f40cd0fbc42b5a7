package pages

import (
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Sandbox is the admin user list.
func Sandbox(users []domain.User, sess domain.Session) g.Node {
	return h.Section(
		h.Class("page sandbox"),
		h.H1(g.Text("Sandbox")),
		h.P(h.Class("lead"), g.Textf("%d users", len(users))),
		h.Table(
			h.Class("users"),
			h.THead(h.Tr(
				h.Th(g.Text("Name")),
				h.Th(g.Text("Email")),
				h.Th(g.Text("Phone")),
				h.Th(g.Text("Status")),
				h.Th(g.Text("Actions")),
			)),
			h.TBody(
				g.Map(users, func(u domain.User) g.Node {
					return components.UserRow(u, sess)
				}),
			),
		),
	)
}
