// Package cardlist holds the local list updates applied after a successful
// mutation against the remote API, so pages do not refetch whole lists.
// Every function returns a new slice and leaves its input untouched.
package cardlist

import (
	"strings"

	"github.com/nfrund/bcard/internal/domain"
	"golang.org/x/text/cases"
)

// Replace swaps in card for the entry with the same id. The list is
// returned unchanged when no entry matches.
func Replace(list []domain.Card, card domain.Card) []domain.Card {
	out := make([]domain.Card, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == card.ID {
			out[i] = card
		}
	}
	return out
}

// Remove drops the entry with id.
func Remove(list []domain.Card, id string) []domain.Card {
	out := make([]domain.Card, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Prepend puts card first, newest first.
func Prepend(list []domain.Card, card domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(list)+1)
	out = append(out, card)
	return append(out, list...)
}

// FilterByTitle keeps cards whose title contains term, ignoring case.
// An empty term keeps everything.
func FilterByTitle(list []domain.Card, term string) []domain.Card {
	term = strings.TrimSpace(term)
	if term == "" {
		return append([]domain.Card(nil), list...)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]domain.Card, 0, len(list))
	for _, c := range list {
		if strings.Contains(fold.String(c.Title), needle) {
			out = append(out, c)
		}
	}
	return out
}

// LikedBy keeps the cards userID has liked.
func LikedBy(list []domain.Card, userID string) []domain.Card {
	out := make([]domain.Card, 0)
	if userID == "" {
		return out
	}
	for _, c := range list {
		if c.IsLikedBy(userID) {
			out = append(out, c)
		}
	}
	return out
}

// ToggleLike flips userID's membership in card.Likes. Toggling twice
// restores the original membership.
func ToggleLike(card domain.Card, userID string) domain.Card {
	likes := make([]string, 0, len(card.Likes)+1)
	found := false
	for _, id := range card.Likes {
		if id == userID {
			found = true
			continue
		}
		likes = append(likes, id)
	}
	if !found {
		likes = append(likes, userID)
	}
	card.Likes = likes
	return card
}

// ReplaceUser swaps in user for the entry with the same id.
func ReplaceUser(list []domain.User, user domain.User) []domain.User {
	out := make([]domain.User, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == user.ID {
			out[i] = user
		}
	}
	return out
}

// RemoveUser drops the user with id.
func RemoveUser(list []domain.User, id string) []domain.User {
	out := make([]domain.User, 0, len(list))
	for _, u := range list {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
