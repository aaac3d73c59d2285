package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case msg, ok := <-ch:
		require.True(t, ok, "channel closed")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func waitClosed(t *testing.T, ch <-chan []byte) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed")
		}
	}
}

func brokers(t *testing.T) map[string]Broker {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]Broker{
		"memory": NewMemoryBroker(),
		"redis":  NewRedisBroker(client),
	}
}

func TestBroker_FanOut(t *testing.T) {
	for name, b := range brokers(t) {
		t.Run(name, func(t *testing.T) {
			defer b.Close()
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			first, err := b.Subscribe(ctx, TopicNotification)
			require.NoError(t, err)
			second, err := b.Subscribe(ctx, TopicNotification)
			require.NoError(t, err)

			require.NoError(t, b.Publish(ctx, TopicNotification, []byte("hello")))

			assert.Equal(t, "hello", string(receive(t, first)))
			assert.Equal(t, "hello", string(receive(t, second)))
		})
	}
}

func TestBroker_CancelClosesChannel(t *testing.T) {
	for name, b := range brokers(t) {
		t.Run(name, func(t *testing.T) {
			defer b.Close()
			ctx, cancel := context.WithCancel(context.Background())

			ch, err := b.Subscribe(ctx, TopicNotification)
			require.NoError(t, err)

			cancel()
			waitClosed(t, ch)
		})
	}
}

func TestBroker_Close(t *testing.T) {
	for name, b := range brokers(t) {
		t.Run(name, func(t *testing.T) {
			ch, err := b.Subscribe(context.Background(), TopicNotification)
			require.NoError(t, err)

			require.NoError(t, b.Close())
			waitClosed(t, ch)

			assert.ErrorIs(t, b.Publish(context.Background(), TopicNotification, nil), ErrClosed)
			_, err = b.Subscribe(context.Background(), TopicNotification)
			assert.ErrorIs(t, err, ErrClosed)
		})
	}
}

func TestMemoryBroker_TopicsAreIsolated(t *testing.T) {
	b := NewMemoryBroker()
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Subscribe(ctx, "other")
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, TopicNotification, []byte("x")))

	select {
	case <-ch:
		t.Fatal("unexpected message on other topic")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEvent_Encode(t *testing.T) {
	ev := Event{
		Type:      EventRequestReceived,
		Payload:   map[string]string{"requestType": "FLIGHT_BOOKING"},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := ev.Encode()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "REQUEST_RECEIVED", decoded["type"])
	assert.Equal(t, "FLIGHT_BOOKING", decoded["payload"].(map[string]interface{})["requestType"])
}
