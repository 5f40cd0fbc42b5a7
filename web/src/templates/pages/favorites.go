package pages

import (
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Favorites lists the cards the user has liked.
func Favorites(cards []domain.Card, sess domain.Session) g.Node {
	return h.Section(
		h.Class("page favorites"),
		h.H1(g.Text("Favorite Cards")),
		h.P(h.Class("lead"), g.Text("The cards you liked")),
		components.CardGrid(cards, sess, false, "You have not liked any cards yet"),
	)
}

// MyCards lists the user's own cards with a tile for creating a new one.
func MyCards(cards []domain.Card, sess domain.Session) g.Node {
	return h.Section(
		h.Class("page my-cards"),
		h.H1(g.Text("My Cards")),
		h.P(h.Class("lead"), g.Text("Manage the business cards you created")),
		h.A(h.Class("btn primary new-card"), h.Href("/my-cards/new"), g.Text("+ New Card")),
		components.CardGrid(cards, sess, true, "You have not created any cards yet"),
	)
}
