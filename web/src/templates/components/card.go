package components

import (
	"strings"

	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// TileID is the DOM id of a card tile, the htmx swap target for likes.
func TileID(cardID string) string {
	return "card-" + cardID
}

// CardTile renders one card. manage enables edit and delete for sessions
// allowed to change the card.
func CardTile(card domain.Card, sess domain.Session, manage bool) g.Node {
	return h.Article(
		h.ID(TileID(card.ID)),
		h.Class("card"),
		h.A(
			h.Href("/cards/"+card.ID),
			h.Img(h.Class("card-img"), h.Src(SafeURL(card.Image.URL)), h.Alt(card.Image.Alt)),
		),
		h.Div(
			h.Class("card-body"),
			h.H3(g.Text(card.Title)),
			h.P(h.Class("subtitle"), g.Text(card.Subtitle)),
			h.P(h.Strong(g.Text("Phone: ")), g.Text(card.Phone)),
			h.P(h.Strong(g.Text("Address: ")), g.Text(FormatAddress(card.Address))),
			h.P(h.Strong(g.Text("Card Number: ")), g.Text(card.BizNumberString())),
		),
		h.Div(
			h.Class("card-actions"),
			h.A(h.Class("btn"), h.Href(SafeURL("tel:"+card.Phone)), g.Attr("aria-label", "Call "+card.Title), g.Text("☎")),
			g.If(auth.CanLike(sess), LikeButton(card, sess, TileID(card.ID))),
			g.If(manage && auth.CanEditCard(sess, card), manageButtons(card)),
		),
	)
}

// LikeBoxID is the DOM id of the like button wrapper on the details page.
func LikeBoxID(cardID string) string {
	return "like-" + cardID
}

// LikeBox is a standalone like button that htmx swaps as a whole.
func LikeBox(card domain.Card, sess domain.Session) g.Node {
	return h.Div(
		h.ID(LikeBoxID(card.ID)),
		h.Class("like-box"),
		LikeButton(card, sess, LikeBoxID(card.ID)),
		h.Span(h.Class("muted"), g.Textf("%d likes", len(card.Likes))),
	)
}

// LikeButton toggles the session user's like. htmx swaps the element with id
// target with the server's answer; without htmx the form posts and redirects back.
func LikeButton(card domain.Card, sess domain.Session, target string) g.Node {
	liked := card.IsLikedBy(sess.UserID())
	label, class := "Like", "btn like"
	if liked {
		label, class = "Unlike", "btn like liked"
	}
	return g.El("form",
		h.Method("post"),
		h.Action("/cards/"+card.ID+"/like"),
		hx.Post("/cards/"+card.ID+"/like"),
		hx.Target("#"+target),
		hx.Swap("outerHTML"),
		h.Button(
			h.Type("submit"),
			h.Class(class),
			g.Attr("aria-pressed", boolString(liked)),
			g.Attr("aria-label", label),
			g.Text(heart(liked)),
		),
	)
}

func manageButtons(card domain.Card) g.Node {
	return g.Group{
		h.A(h.Class("btn"), h.Href("/cards/"+card.ID+"/edit"), g.Text("Edit")),
		g.El("form",
			h.Method("post"),
			h.Action("/cards/"+card.ID+"/delete"),
			hx.Confirm("Are you sure you want to delete this card?"),
			h.Button(h.Type("submit"), h.Class("btn danger"), g.Text("Delete")),
		),
	}
}

// CardGrid renders a list of tiles, or empty when there are none.
func CardGrid(cards []domain.Card, sess domain.Session, manage bool, empty string) g.Node {
	if len(cards) == 0 {
		return h.P(h.Class("empty"), g.Text(empty))
	}
	return h.Div(
		h.Class("card-grid"),
		g.Map(cards, func(c domain.Card) g.Node {
			return CardTile(c, sess, manage)
		}),
	)
}

// FormatAddress joins the non-empty address parts for display.
func FormatAddress(a domain.Address) string {
	street := strings.TrimSpace(a.Street + " " + a.HouseNumber.String())
	parts := make([]string, 0, 4)
	for _, p := range []string{street, a.City, a.State, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func heart(liked bool) string {
	if liked {
		return "♥"
	}
	return "♡"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
