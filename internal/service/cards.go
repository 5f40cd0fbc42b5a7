// Package service holds the application operations behind the pages and the
// CLI. It talks to the remote API, keeps cached lists in step with successful
// mutations, and announces changes on the event bus.
package service

import (
	"context"
	"log/slog"

	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/cache"
	"github.com/nfrund/bcard/internal/cardlist"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/pubsub"
)

// Cards serves card lists and card mutations.
type Cards struct {
	api   domain.CardAPI
	lists cache.CardLists
	pub   pubsub.Publisher
}

// NewCards creates the card service.
func NewCards(api domain.CardAPI, lists cache.CardLists, pub pubsub.Publisher) *Cards {
	return &Cards{api: api, lists: lists, pub: pub}
}

// All returns every card, from the cache when fresh.
func (s *Cards) All(ctx context.Context) ([]domain.Card, error) {
	if cards, ok := s.lists.Get(ctx, cache.KeyAllCards); ok {
		return cards, nil
	}
	cards, err := s.api.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	s.lists.Set(ctx, cache.KeyAllCards, cards)
	return cards, nil
}

// Search returns the cards whose title contains term.
func (s *Cards) Search(ctx context.Context, term string) ([]domain.Card, error) {
	cards, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return cardlist.FilterByTitle(cards, term), nil
}

// Mine returns the cards owned by the session's user.
func (s *Cards) Mine(ctx context.Context, sess domain.Session) ([]domain.Card, error) {
	if !sess.IsAuthenticated {
		return nil, domain.ErrUnauthorized
	}
	if !auth.CanManageOwnCards(sess) {
		return nil, domain.ErrForbidden
	}
	key := cache.KeyMyCards(sess.UserID())
	if cards, ok := s.lists.Get(ctx, key); ok {
		return cards, nil
	}
	cards, err := s.api.MyCards(ctx)
	if err != nil {
		return nil, err
	}
	s.lists.Set(ctx, key, cards)
	return cards, nil
}

// Favorites returns the cards the session's user has liked.
func (s *Cards) Favorites(ctx context.Context, sess domain.Session) ([]domain.Card, error) {
	if !auth.CanViewFavorites(sess) {
		return nil, domain.ErrUnauthorized
	}
	cards, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return cardlist.LikedBy(cards, sess.UserID()), nil
}

// Get fetches one card.
func (s *Cards) Get(ctx context.Context, id string) (*domain.Card, error) {
	return s.api.GetCard(ctx, id)
}

// GetEditable fetches a card the session may edit or delete.
func (s *Cards) GetEditable(ctx context.Context, sess domain.Session, id string) (*domain.Card, error) {
	if !sess.IsAuthenticated {
		return nil, domain.ErrUnauthorized
	}
	card, err := s.api.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanEditCard(sess, *card) {
		return nil, domain.ErrForbidden
	}
	return card, nil
}

// Create creates a card and puts it first in the cached lists.
func (s *Cards) Create(ctx context.Context, sess domain.Session, in domain.CardInput) (*domain.Card, error) {
	if !sess.IsAuthenticated {
		return nil, domain.ErrUnauthorized
	}
	if !auth.CanManageOwnCards(sess) {
		return nil, domain.ErrForbidden
	}
	card, err := s.api.CreateCard(ctx, in)
	if err != nil {
		return nil, err
	}
	prepend := func(list []domain.Card) []domain.Card { return cardlist.Prepend(list, *card) }
	s.lists.Update(ctx, cache.KeyAllCards, prepend)
	s.lists.Update(ctx, cache.KeyMyCards(sess.UserID()), prepend)

	s.publish(ctx, sess, pubsub.TopicCardCreated, pubsub.CardEvent{CardID: card.ID, Title: card.Title})
	return card, nil
}

// Update replaces a card's fields and swaps the result into the cached lists.
func (s *Cards) Update(ctx context.Context, sess domain.Session, id string, in domain.CardInput) (*domain.Card, error) {
	if _, err := s.GetEditable(ctx, sess, id); err != nil {
		return nil, err
	}
	card, err := s.api.UpdateCard(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.replace(ctx, sess, *card)

	s.publish(ctx, sess, pubsub.TopicCardUpdated, pubsub.CardEvent{CardID: card.ID, Title: card.Title})
	return card, nil
}

// Delete removes a card and drops it from the cached lists.
func (s *Cards) Delete(ctx context.Context, sess domain.Session, id string) error {
	card, err := s.GetEditable(ctx, sess, id)
	if err != nil {
		return err
	}
	if err := s.api.DeleteCard(ctx, card.ID, card.BizNumber); err != nil {
		return err
	}
	remove := func(list []domain.Card) []domain.Card { return cardlist.Remove(list, card.ID) }
	s.lists.Update(ctx, cache.KeyAllCards, remove)
	s.lists.Update(ctx, cache.KeyMyCards(sess.UserID()), remove)
	if card.UserID != "" && card.UserID != sess.UserID() {
		s.lists.Update(ctx, cache.KeyMyCards(card.UserID), remove)
	}

	s.publish(ctx, sess, pubsub.TopicCardDeleted, pubsub.CardEvent{CardID: card.ID, Title: card.Title})
	return nil
}

// ToggleLike flips the session user's like. The card returned by the API is
// authoritative and replaces the cached copy.
func (s *Cards) ToggleLike(ctx context.Context, sess domain.Session, id string) (*domain.Card, error) {
	if !auth.CanLike(sess) {
		return nil, domain.ErrUnauthorized
	}
	card, err := s.api.ToggleLike(ctx, id)
	if err != nil {
		return nil, err
	}
	s.replace(ctx, sess, *card)

	s.publish(ctx, sess, pubsub.TopicCardLiked, pubsub.CardEvent{
		CardID: card.ID,
		Title:  card.Title,
		Liked:  card.IsLikedBy(sess.UserID()),
	})
	return card, nil
}

func (s *Cards) replace(ctx context.Context, sess domain.Session, card domain.Card) {
	swap := func(list []domain.Card) []domain.Card { return cardlist.Replace(list, card) }
	s.lists.Update(ctx, cache.KeyAllCards, swap)
	s.lists.Update(ctx, cache.KeyMyCards(sess.UserID()), swap)
	if card.UserID != "" && card.UserID != sess.UserID() {
		s.lists.Update(ctx, cache.KeyMyCards(card.UserID), swap)
	}
}

// publish announces a change. The mutation already succeeded, so failures
// are only logged.
func (s *Cards) publish(ctx context.Context, sess domain.Session, topic string, event pubsub.CardEvent) {
	if s.pub == nil {
		return
	}
	if err := pubsub.PublishEvent(ctx, s.pub, topic, sess.UserID(), event); err != nil {
		slog.WarnContext(ctx, "Failed to publish card event", "topic", topic, "card_id", event.CardID, "error", err)
	}
}
