package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// WatermillBridge implements Publisher and Subscriber on watermill's GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
}

const (
	// Metadata keys carrying Message fields through watermill's message.
	metaKeyUserID = "user_id"
	metaKeyTopic  = "topic"
)

// NewWatermillBridge creates an in-memory bus. Publish blocks until every
// subscriber has acknowledged the message. A nil tracer disables tracing.
func NewWatermillBridge(tracer trace.Tracer) *WatermillBridge {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(tracerName)
	}
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		logger,
	)

	return &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		tracer: tracer,
	}
}

// mapToWatermillMessage converts a Message to a watermill message.
func mapToWatermillMessage(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)

	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyUserID, msg.UserID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)

	return wmMsg
}

// mapToPubSubMessage converts a watermill message back to a Message.
func mapToPubSubMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyUserID && k != metaKeyTopic {
			metadata[k] = v
		}
	}

	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		UserID:   wmMsg.Metadata.Get(metaKeyUserID),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

func spanAttributes(operation string, wmMsg *message.Message) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", wmMsg.Metadata.Get(metaKeyTopic)),
		attribute.String("messaging.message_id", wmMsg.UUID),
		attribute.String("user.id", wmMsg.Metadata.Get(metaKeyUserID)),
		attribute.Int("messaging.message_payload_size_bytes", len(wmMsg.Payload)),
	)
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := mapToWatermillMessage(msg)

	spanCtx, span := wb.tracer.Start(ctx, "pubsub.publish."+msg.Topic, spanAttributes("publish", wmMsg))
	defer span.End()
	wmMsg.SetContext(spanCtx)

	if err := wb.pub.Publish(msg.Topic, wmMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Subscribe implements the Subscriber interface.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			wb.handle(ctx, topic, wmMsg, handler)
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

func (wb *WatermillBridge) handle(ctx context.Context, topic string, wmMsg *message.Message, handler Handler) {
	parent := trace.ContextWithSpanContext(ctx, trace.SpanContextFromContext(wmMsg.Context()))
	spanCtx, span := wb.tracer.Start(parent, "pubsub.process."+topic, spanAttributes("process", wmMsg))
	defer span.End()

	if err := handler(spanCtx, mapToPubSubMessage(wmMsg)); err != nil {
		slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		// GoChannel redelivers nacked messages; the in-process bus drops them instead.
		wmMsg.Ack()
		return
	}
	wmMsg.Ack()
}

// Close shuts down the bus and ends all subscriptions.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
