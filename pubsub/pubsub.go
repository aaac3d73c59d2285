// Package pubsub fans notification events out to live subscribers.
package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// TopicNotification carries every dashboard notification.
const TopicNotification = "NOTIFICATION_EVENT"

const (
	EventEmailSent       = "EMAIL_SENT"
	EventRequestReceived = "REQUEST_RECEIVED"
)

// ErrClosed is returned by a broker after Close.
var ErrClosed = errors.New("pubsub: broker closed")

// Event is the envelope published on TopicNotification.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Encode marshals the event for Publish.
func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Broker delivers published payloads to every subscriber of a topic.
// A subscription ends, and its channel is closed, when ctx is cancelled or
// the broker is closed.
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(ctx context.Context, topic string) (<-chan []byte, error)
	Close() error
}
