package services

import (
	"context"
	"log/slog"
	"time"

	"travel-gateway/metrics"
	"travel-gateway/pubsub"
)

// Notifier publishes dashboard notifications and streams them to
// subscribers.
type Notifier interface {
	Notify(ctx context.Context, eventType string, payload interface{}) error
	Subscribe(ctx context.Context) (<-chan []byte, error)
}

type notifier struct {
	broker  pubsub.Broker
	metrics metrics.MetricsCollector
	now     func() time.Time
}

func NewNotifier(broker pubsub.Broker, m metrics.MetricsCollector) Notifier {
	if m == nil {
		m = metrics.Nop{}
	}
	return &notifier{broker: broker, metrics: m, now: time.Now}
}

func (n *notifier) Notify(ctx context.Context, eventType string, payload interface{}) error {
	event := pubsub.Event{Type: eventType, Payload: payload, CreatedAt: n.now().UTC()}
	raw, err := event.Encode()
	if err != nil {
		return err
	}
	if err := n.broker.Publish(ctx, pubsub.TopicNotification, raw); err != nil {
		return err
	}
	n.metrics.RecordNotification(pubsub.TopicNotification)
	slog.Debug("notification published", "type", eventType)
	return nil
}

func (n *notifier) Subscribe(ctx context.Context) (<-chan []byte, error) {
	return n.broker.Subscribe(ctx, pubsub.TopicNotification)
}

// notifyQuietly publishes an event whose loss must not fail the caller.
func notifyQuietly(ctx context.Context, n Notifier, eventType string, payload interface{}) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, eventType, payload); err != nil {
		slog.Error("failed to publish notification", "type", eventType, "error", err)
	}
}
