// Package cache keeps short-lived copies of card lists per page so mutations
// can patch the list locally instead of refetching it from the remote API.
package cache

import (
	"context"

	"github.com/nfrund/bcard/internal/domain"
)

// KeyAllCards is the home page list.
const KeyAllCards = "cards:all"

// KeyMyCards is the my-cards list of one user.
func KeyMyCards(userID string) string {
	return "cards:mine:" + userID
}

// CardLists stores card lists by key. Get reports a miss with ok=false; a
// backend failure is logged and treated as a miss so the caller falls back
// to the remote API.
type CardLists interface {
	Get(ctx context.Context, key string) (cards []domain.Card, ok bool)
	Set(ctx context.Context, key string, cards []domain.Card)
	// Update rewrites the cached list for key with fn. Absent keys are left absent.
	Update(ctx context.Context, key string, fn func([]domain.Card) []domain.Card)
	Delete(ctx context.Context, key string)
}
