package pubsub

import (
	"context"
	"log/slog"
	"sync"
)

const subscriberBuffer = 16

type subscriber struct {
	ch   chan []byte
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// MemoryBroker is an in-process Broker. A subscriber whose buffer is full
// misses the message rather than blocking the publisher.
type MemoryBroker struct {
	mu     sync.RWMutex
	topics map[string]map[*subscriber]struct{}
	closed bool
	done   chan struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		topics: make(map[string]map[*subscriber]struct{}),
		done:   make(chan struct{}),
	}
}

func (b *MemoryBroker) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	for sub := range b.topics[topic] {
		select {
		case sub.ch <- payload:
		default:
			slog.Warn("dropping notification for slow subscriber", "topic", topic)
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}

	sub := &subscriber{ch: make(chan []byte, subscriberBuffer)}
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*subscriber]struct{})
	}
	b.topics[topic][sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.mu.Lock()
		delete(b.topics[topic], sub)
		b.mu.Unlock()
		sub.close()
	}()

	return sub.ch, nil
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for _, subs := range b.topics {
		for sub := range subs {
			sub.close()
		}
	}
	b.topics = make(map[string]map[*subscriber]struct{})
	return nil
}
