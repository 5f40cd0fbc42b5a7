// Package pubsub is the in-process event bus. Services publish domain events
// after successful mutations; subscribers react without blocking the request
// path on anything but delivery.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "card.created").
	Topic string
	// UserID identifies the user who caused the event.
	UserID string
	// Payload contains the JSON-encoded event.
	Payload []byte
	// Metadata carries extra key-value context such as the request id.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to topic in the background and returns once
	// the subscription is active. It stops when ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
