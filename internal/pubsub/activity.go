package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrund/bcard/internal/metrics"
)

// ActivityLog records every domain event in the log and the events counter.
// Payloads are decoded so the log carries typed fields.
type ActivityLog struct {
	sub Subscriber
}

// NewActivityLog creates an ActivityLog reading from sub.
func NewActivityLog(sub Subscriber) *ActivityLog {
	return &ActivityLog{sub: sub}
}

// Start subscribes to all domain topics until ctx is canceled.
func (a *ActivityLog) Start(ctx context.Context) error {
	for _, topic := range AllTopics {
		if err := a.sub.Subscribe(ctx, topic, a.handle); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}
	return nil
}

func (a *ActivityLog) handle(ctx context.Context, msg Message) error {
	metrics.DomainEventsTotal.WithLabelValues(msg.Topic).Inc()
	attrs, err := eventAttrs(msg)
	if err != nil {
		// Redelivery would not fix a bad payload, so the message is acked.
		slog.WarnContext(ctx, "undecodable domain event", "topic", msg.Topic, "actor", msg.UserID, "error", err)
		return nil
	}
	slog.InfoContext(ctx, "domain event", append([]any{"topic", msg.Topic, "actor", msg.UserID}, attrs...)...)
	return nil
}

func eventAttrs(msg Message) ([]any, error) {
	if strings.HasPrefix(msg.Topic, "card.") {
		ev, err := DecodeEvent[CardEvent](msg)
		if err != nil {
			return nil, err
		}
		return []any{"card_id", ev.CardID, "title", ev.Title, "liked", ev.Liked}, nil
	}
	ev, err := DecodeEvent[UserEvent](msg)
	if err != nil {
		return nil, err
	}
	return []any{"user_id", ev.UserID, "is_business", ev.IsBusiness}, nil
}
