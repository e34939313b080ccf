// Package bus abstracts message fan-out between gateway instances. A single
// process uses the in-memory bus; multi-instance deployments plug in the
// Redis backplane so broadcasts reach clients connected elsewhere.
package bus

import (
	"context"
	"sync"
)

type Handler func(topic string, payload []byte)

type Bus interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(topic string, h Handler)
	Close() error
}

// Memory is a process-local Bus. Handlers run synchronously in the
// publisher's goroutine, so they must not block.
type Memory struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewMemory() *Memory {
	return &Memory{handlers: make(map[string][]Handler)}
}

func (m *Memory) Publish(_ context.Context, topic string, payload []byte) error {
	m.mu.RLock()
	hs := m.handlers[topic]
	m.mu.RUnlock()
	for _, h := range hs {
		h(topic, payload)
	}
	return nil
}

func (m *Memory) Subscribe(topic string, h Handler) {
	m.mu.Lock()
	m.handlers[topic] = append(m.handlers[topic], h)
	m.mu.Unlock()
}

func (m *Memory) Close() error { return nil }
