package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Topics published by the card and user services.
const (
	TopicCardCreated         = "card.created"
	TopicCardUpdated         = "card.updated"
	TopicCardDeleted         = "card.deleted"
	TopicCardLiked           = "card.liked"
	TopicUserUpdated         = "user.updated"
	TopicUserBusinessToggled = "user.business_toggled"
	TopicUserDeleted         = "user.deleted"
)

// AllTopics lists every domain topic, for subscribers that watch them all.
var AllTopics = []string{
	TopicCardCreated,
	TopicCardUpdated,
	TopicCardDeleted,
	TopicCardLiked,
	TopicUserUpdated,
	TopicUserBusinessToggled,
	TopicUserDeleted,
}

// CardEvent describes a change to one card.
type CardEvent struct {
	CardID string `json:"cardId"`
	Title  string `json:"title,omitempty"`
	// Liked is the actor's membership after a like toggle.
	Liked bool `json:"liked,omitempty"`
}

// UserEvent describes a change to one account.
type UserEvent struct {
	UserID     string `json:"userId"`
	IsBusiness bool   `json:"isBusiness,omitempty"`
}

// PublishEvent encodes payload as JSON and publishes it on topic on behalf of actorID.
func PublishEvent[T any](ctx context.Context, p Publisher, topic, actorID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", topic, err)
	}
	return p.Publish(ctx, Message{
		Topic:   topic,
		UserID:  actorID,
		Payload: data,
	})
}

// DecodeEvent unmarshals a message payload into T.
func DecodeEvent[T any](msg Message) (T, error) {
	var out T
	if err := json.Unmarshal(msg.Payload, &out); err != nil {
		return out, fmt.Errorf("failed to decode %s event: %w", msg.Topic, err)
	}
	return out, nil
}
