// Package bus is a small in-process publish/subscribe hub used to signal
// that stored data changed, so cached reads can be invalidated without the
// writer knowing who reads.
package bus

import (
	"sync"

	"github.com/google/uuid"
)

type Topic string

const (
	TopicRotaSaved    Topic = "rota.saved"
	TopicRotaCleared  Topic = "rota.cleared"
	TopicSleepChanged Topic = "sleep.changed"
)

// Event carries the topic and the user whose data changed.
type Event struct {
	Topic  Topic
	UserID uint
}

type Subscription struct {
	ID    string
	topic Topic
}

type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic]map[string]func(Event)
}

func New() *Bus {
	return &Bus{handlers: make(map[Topic]map[string]func(Event))}
}

// Subscribe registers fn for the topic and returns a handle for Unsubscribe.
// Handlers run synchronously on the publisher's goroutine and must be fast.
func (b *Bus) Subscribe(topic Topic, fn func(Event)) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[string]func(Event))
	}
	id := uuid.NewString()
	b.handlers[topic][id] = fn
	return Subscription{ID: id, topic: topic}
}

func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if handlers, ok := b.handlers[sub.topic]; ok {
		delete(handlers, sub.ID)
	}
}

func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]func(Event), 0, len(b.handlers[event.Topic]))
	for _, fn := range b.handlers[event.Topic] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(event)
	}
}
