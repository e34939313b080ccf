package bus

import (
	"context"
	"testing"
)

func TestMemoryPublishSubscribe(t *testing.T) {
	b := NewMemory()

	var got [][]byte
	b.Subscribe("chatMessage", func(_ string, payload []byte) {
		got = append(got, payload)
	})

	if err := b.Publish(context.Background(), "chatMessage", []byte("one")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := b.Publish(context.Background(), "chatMessage", []byte("two")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(got) != 2 || string(got[0]) != "one" || string(got[1]) != "two" {
		t.Fatalf("unexpected deliveries: %q", got)
	}
}

func TestMemoryMultipleSubscribers(t *testing.T) {
	b := NewMemory()

	first, second := 0, 0
	b.Subscribe("t", func(string, []byte) { first++ })
	b.Subscribe("t", func(string, []byte) { second++ })

	if err := b.Publish(context.Background(), "t", []byte("x")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if first != 1 || second != 1 {
		t.Fatalf("expected both subscribers to receive, got %d %d", first, second)
	}
}

func TestMemoryTopicIsolation(t *testing.T) {
	b := NewMemory()

	delivered := 0
	b.Subscribe("chatMessage", func(string, []byte) { delivered++ })

	// unrelated topic, no subscribers: must not panic or deliver
	if err := b.Publish(context.Background(), "threadChatMessage", []byte("x")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if delivered != 0 {
		t.Fatalf("expected no cross-topic delivery")
	}
}
