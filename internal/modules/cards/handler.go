package cards

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/handlers"
	"github.com/nfrund/bcard/internal/service"
	"github.com/nfrund/bcard/internal/validation"
	"github.com/nfrund/bcard/internal/view"
	"github.com/nfrund/bcard/web/src/templates/components"
	"github.com/nfrund/bcard/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// Handler serves the card pages and card actions.
type Handler struct {
	cards *service.Cards
	pages *handlers.Pages
}

// NewHandler creates a new Handler.
func NewHandler(cards *service.Cards, pages *handlers.Pages) *Handler {
	return &Handler{cards: cards, pages: pages}
}

// Home lists all cards, filtered by the q query parameter (GET /).
func (h *Handler) Home(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	list, err := h.cards.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return h.pages.Render(c, http.StatusOK, "Cards", pages.Home(list, auth.FromContext(c), query))
}

// Details shows one card (GET /cards/:id).
func (h *Handler) Details(c echo.Context) error {
	card, err := h.cards.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return h.pages.Render(c, http.StatusOK, card.Title, pages.CardDetails(*card, auth.FromContext(c)))
}

// Favorites lists the cards the visitor liked (GET /favorites).
func (h *Handler) Favorites(c echo.Context) error {
	sess := auth.FromContext(c)
	list, err := h.cards.Favorites(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return h.pages.Render(c, http.StatusOK, "Favorite Cards", pages.Favorites(list, sess))
}

// MyCards lists the visitor's own cards (GET /my-cards).
func (h *Handler) MyCards(c echo.Context) error {
	sess := auth.FromContext(c)
	list, err := h.cards.Mine(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return h.pages.Render(c, http.StatusOK, "My Cards", pages.MyCards(list, sess))
}

// New renders the empty card form (GET /my-cards/new).
func (h *Handler) New(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, "Create Card", "/my-cards", validation.CardForm{}, nil)
}

// Create submits a new card (POST /my-cards).
func (h *Handler) Create(c echo.Context) error {
	form := validation.BindCard(c)
	if errs := validation.Errors(c.Validate(form)); errs != nil {
		return h.renderForm(c, http.StatusUnprocessableEntity, "Create Card", "/my-cards", form, errs)
	}

	card, err := h.cards.Create(c.Request().Context(), auth.FromContext(c), form.Input())
	if err != nil {
		slog.Warn("Card creation failed", "error", err)
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to create card"))
		return h.renderForm(c, handlers.FailedStatus(err), "Create Card", "/my-cards", form, nil)
	}

	view.SetFlashSuccess(c, "Card created: "+card.Title)
	return c.Redirect(http.StatusSeeOther, "/my-cards")
}

// Edit renders the form pre-filled with a card (GET /cards/:id/edit).
func (h *Handler) Edit(c echo.Context) error {
	card, err := h.cards.GetEditable(c.Request().Context(), auth.FromContext(c), c.Param("id"))
	if err != nil {
		return err
	}
	form := validation.CardFormFrom(domain.InputFromCard(*card))
	return h.renderForm(c, http.StatusOK, "Edit Card", "/cards/"+card.ID, form, nil)
}

// Update submits the edited card (POST /cards/:id).
func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")
	action := "/cards/" + id
	form := validation.BindCard(c)
	if errs := validation.Errors(c.Validate(form)); errs != nil {
		return h.renderForm(c, http.StatusUnprocessableEntity, "Edit Card", action, form, errs)
	}

	card, err := h.cards.Update(c.Request().Context(), auth.FromContext(c), id, form.Input())
	if err != nil {
		slog.Warn("Card update failed", "card_id", id, "error", err)
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to update card"))
		return h.renderForm(c, handlers.FailedStatus(err), "Edit Card", action, form, nil)
	}

	view.SetFlashSuccess(c, "Card updated: "+card.Title)
	return c.Redirect(http.StatusSeeOther, "/cards/"+card.ID)
}

// Delete removes a card (POST /cards/:id/delete). The form asks for
// confirmation before it is sent.
func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.cards.Delete(c.Request().Context(), auth.FromContext(c), id); err != nil {
		slog.Warn("Card deletion failed", "card_id", id, "error", err)
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to delete card"))
		return handlers.RedirectBack(c, "/my-cards")
	}

	view.SetFlashSuccess(c, "Card deleted")
	if strings.Contains(c.Request().Referer(), "/cards/"+id) {
		// The page the visitor came from no longer exists.
		return c.Redirect(http.StatusSeeOther, "/my-cards")
	}
	return handlers.RedirectBack(c, "/my-cards")
}

// Like toggles the visitor's like (POST /cards/:id/like). htmx gets the
// re-rendered element it targeted; plain form posts are redirected back.
func (h *Handler) Like(c echo.Context) error {
	sess := auth.FromContext(c)
	id := c.Param("id")
	card, err := h.cards.ToggleLike(c.Request().Context(), sess, id)
	if err != nil {
		if handlers.IsHTMX(c) {
			return err
		}
		view.SetFlashError(c, handlers.UserMessage(err, "Failed to update like"))
		return handlers.RedirectBack(c, "/")
	}

	if !handlers.IsHTMX(c) {
		return handlers.RedirectBack(c, "/")
	}
	return h.pages.Fragment(c, http.StatusOK, likeFragment(c, *card, sess))
}

// likeFragment picks what replaces the htmx target: the like box on the
// details page, nothing when a card leaves the favorites page, otherwise the
// tile with the actions of the page it sits on.
func likeFragment(c echo.Context, card domain.Card, sess domain.Session) g.Node {
	if c.Request().Header.Get(handlers.HeaderHXTarget) == components.LikeBoxID(card.ID) {
		return components.LikeBox(card, sess)
	}
	switch handlers.CurrentPath(c) {
	case "/favorites":
		if !card.IsLikedBy(sess.UserID()) {
			return g.Text("")
		}
		return components.CardTile(card, sess, false)
	case "/my-cards":
		return components.CardTile(card, sess, true)
	default:
		return components.CardTile(card, sess, auth.CanAdmin(sess))
	}
}

func (h *Handler) renderForm(c echo.Context, status int, heading, action string, form validation.CardForm, errs validation.FieldErrors) error {
	return h.pages.Render(c, status, heading, pages.CardForm(heading, action, form, errs))
}
