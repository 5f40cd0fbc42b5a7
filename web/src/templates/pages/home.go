package pages

import (
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home lists every card matching the search term. Admins manage cards from here.
func Home(cards []domain.Card, sess domain.Session, query string) g.Node {
	return h.Section(
		h.Class("page home"),
		h.H1(g.Text("Cards Page")),
		h.P(h.Class("lead"), g.Text("Here you can find business cards from all categories")),
		g.If(query != "", h.P(h.Class("muted"), g.Textf("Showing results for %q", query))),
		components.CardGrid(cards, sess, auth.CanAdmin(sess), "No cards found"),
	)
}

// CardDetails shows one card in full.
func CardDetails(card domain.Card, sess domain.Session) g.Node {
	return h.Section(
		h.Class("page details"),
		h.H1(g.Text(card.Title)),
		h.P(h.Class("lead"), g.Text(card.Subtitle)),
		h.Div(
			h.Class("details-layout"),
			h.Img(h.Class("details-img"), h.Src(components.SafeURL(card.Image.URL)), h.Alt(card.Image.Alt)),
			h.Div(
				h.Class("details-body"),
				g.If(card.Description != "", h.P(g.Text(card.Description))),
				detail("Phone", h.A(h.Href(components.SafeURL("tel:"+card.Phone)), g.Text(card.Phone))),
				g.If(card.Email != "", detail("Email", h.A(h.Href(components.SafeURL("mailto:"+card.Email)), g.Text(card.Email)))),
				g.If(card.Web != "", detail("Website", components.WebLink(card.Web))),
				detail("Address", g.Text(components.FormatAddress(card.Address))),
				g.If(card.Address.Zip != "", detail("Zip", g.Text(card.Address.Zip.String()))),
				detail("Card Number", g.Text(card.BizNumberString())),
				g.If(auth.CanLike(sess), components.LikeBox(card, sess)),
				g.If(!auth.CanLike(sess), detail("Likes", g.Textf("%d", len(card.Likes)))),
			),
		),
		h.A(h.Class("btn"), h.Href("/"), g.Text("Back to cards")),
	)
}

func detail(label string, value g.Node) g.Node {
	return h.P(h.Strong(g.Text(label+": ")), value)
}
