package bus

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Redis is a Bus backed by Redis pub/sub. Every gateway instance subscribes
// to the same channels, so a message published on one instance fans out to
// clients connected on all of them.
type Redis struct {
	rdb *redis.Client

	mu       sync.RWMutex
	handlers map[string][]Handler
	subs     map[string]*redis.PubSub
}

func NewRedis(addr string) *Redis {
	return &Redis{
		rdb:      redis.NewClient(&redis.Options{Addr: addr}),
		handlers: make(map[string][]Handler),
		subs:     make(map[string]*redis.PubSub),
	}
}

func (r *Redis) Publish(ctx context.Context, topic string, payload []byte) error {
	return r.rdb.Publish(ctx, topic, payload).Err()
}

func (r *Redis) Subscribe(topic string, h Handler) {
	r.mu.Lock()
	r.handlers[topic] = append(r.handlers[topic], h)
	_, active := r.subs[topic]
	if !active {
		sub := r.rdb.Subscribe(context.Background(), topic)
		r.subs[topic] = sub
		go r.consume(topic, sub)
	}
	r.mu.Unlock()
}

func (r *Redis) consume(topic string, sub *redis.PubSub) {
	for msg := range sub.Channel() {
		r.mu.RLock()
		hs := r.handlers[topic]
		r.mu.RUnlock()
		for _, h := range hs {
			h(topic, []byte(msg.Payload))
		}
	}
	log.Printf("[bus] redis subscription closed: %s", topic)
}

func (r *Redis) Close() error {
	r.mu.Lock()
	for _, sub := range r.subs {
		_ = sub.Close()
	}
	r.subs = make(map[string]*redis.PubSub)
	r.mu.Unlock()
	return r.rdb.Close()
}
