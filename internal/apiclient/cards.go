package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nfrund/bcard/internal/domain"
)

var _ domain.CardAPI = (*Client)(nil)

func cardPath(id string) string {
	return "/cards/" + url.PathEscape(id)
}

// ListCards fetches every card (GET /cards).
func (c *Client) ListCards(ctx context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	if err := c.callJSON(ctx, "list cards", http.MethodGet, "/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCard fetches one card (GET /cards/:id).
func (c *Client) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := c.callJSON(ctx, "get card", http.MethodGet, cardPath(id), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// MyCards fetches the cards owned by the token's user (GET /cards/my-cards).
func (c *Client) MyCards(ctx context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	if err := c.callJSON(ctx, "my cards", http.MethodGet, "/cards/my-cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// CreateCard creates a card (POST /cards) and returns it as stored.
func (c *Client) CreateCard(ctx context.Context, in domain.CardInput) (*domain.Card, error) {
	var card domain.Card
	if err := c.callJSON(ctx, "create card", http.MethodPost, "/cards", in, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard replaces a card's fields (PUT /cards/:id).
func (c *Client) UpdateCard(ctx context.Context, id string, in domain.CardInput) (*domain.Card, error) {
	var card domain.Card
	if err := c.callJSON(ctx, "update card", http.MethodPut, cardPath(id), in, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// ToggleLike flips the caller's like on a card (PATCH /cards/:id) and returns the updated card.
func (c *Client) ToggleLike(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := c.callJSON(ctx, "like card", http.MethodPatch, cardPath(id), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard removes a card (DELETE /cards/:id). The API wants the business
// number in the body as a second confirmation.
func (c *Client) DeleteCard(ctx context.Context, id string, bizNumber int64) error {
	payload := map[string]int64{"bizNumber": bizNumber}
	return c.callJSON(ctx, "delete card", http.MethodDelete, cardPath(id), payload, nil)
}
