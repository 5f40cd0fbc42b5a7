package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About describes the application.
func About() g.Node {
	return h.Section(
		h.Class("page about"),
		h.H1(g.Text("About BCard")),
		h.P(g.Text("BCard is a directory of business cards. Anyone can browse the cards and open their details; members can like cards and keep a list of favorites.")),
		h.Div(
			h.Class("about-grid"),
			h.Div(
				h.Class("panel"),
				h.H3(g.Text("For everyone")),
				h.P(g.Text("Browse every card on the home page and search them by title.")),
			),
			h.Div(
				h.Class("panel"),
				h.H3(g.Text("For members")),
				h.P(g.Text("Like cards with the heart button and find them again under Fav Cards.")),
			),
			h.Div(
				h.Class("panel"),
				h.H3(g.Text("For businesses")),
				h.P(g.Text("Business accounts create, edit and delete their own cards under My Cards.")),
			),
		),
	)
}
