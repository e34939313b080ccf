// Package chat bridges the websocket gateway and the message store: inbound
// client events are validated, persisted, then re-broadcast over the bus.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"scholarconnect/bus"
	"scholarconnect/store"
)

// Event names are the wire contract shared with the browser clients.
const (
	EventChatMessage       = "chatMessage"
	EventThreadChatMessage = "threadChatMessage"
)

// Strategy selects how a persisted message reaches subscribers.
type Strategy int

const (
	// PushPayload broadcasts the authoritative payload including the
	// server-assigned timestamp. Used for direct messages.
	PushPayload Strategy = iota
	// NotifyAndRefetch broadcasts only a signal; receiving clients re-fetch
	// persisted history. Slightly slower, but the rendered state can never
	// drift from the store. Used for thread messages.
	NotifyAndRefetch
)

func strategyFor(event string) Strategy {
	if event == EventThreadChatMessage {
		return NotifyAndRefetch
	}
	return PushPayload
}

type Controller struct {
	store *store.Store
	bus   bus.Bus
}

func NewController(s *store.Store, b bus.Bus) *Controller {
	return &Controller{store: s, bus: b}
}

type directMessagePayload struct {
	SenderID      uint      `json:"senderId"`
	RecipientID   uint      `json:"recipientId"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	CorrelationID string    `json:"correlationId,omitempty"`
}

type threadMessagePayload struct {
	SenderID uint   `json:"senderId"`
	ThreadID uint   `json:"thread_id"`
	Text     string `json:"message_text"`
}

// HandleEvent dispatches one inbound gateway event. Errors are returned to
// the submitting client only; a failed persist never broadcasts.
func (ct *Controller) HandleEvent(ctx context.Context, event string, data json.RawMessage) error {
	switch event {
	case EventChatMessage:
		return ct.handleDirectMessage(ctx, data)
	case EventThreadChatMessage:
		return ct.handleThreadMessage(ctx, data)
	default:
		return fmt.Errorf("unsupported event %q", event)
	}
}

// handleDirectMessage persists and re-broadcasts a direct message with the
// PushPayload strategy. There is deliberately no deduplication: a client
// that emits the same payload twice persists two rows. The correlationId,
// when present, is echoed verbatim so the sender can reconcile its
// optimistic local copy against the confirmed one.
func (ct *Controller) handleDirectMessage(ctx context.Context, data json.RawMessage) error {
	var in directMessagePayload
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.New("invalid chatMessage payload")
	}

	msg, err := ct.store.AppendDirectMessage(in.SenderID, in.RecipientID, in.Content)
	if err != nil {
		if errors.Is(err, store.ErrEmptyText) || errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		log.Printf("[chat] persist direct message failed: %v", err)
		return errors.New("failed to save message")
	}

	out := directMessagePayload{
		SenderID:      msg.SenderID,
		RecipientID:   msg.RecipientID,
		Content:       msg.Text,
		CreatedAt:     msg.Timestamp,
		CorrelationID: in.CorrelationID,
	}
	ct.publish(ctx, EventChatMessage, out)
	return nil
}

// handleThreadMessage persists a thread message and broadcasts a
// NotifyAndRefetch signal carrying the same inbound shape.
func (ct *Controller) handleThreadMessage(ctx context.Context, data json.RawMessage) error {
	var in threadMessagePayload
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.New("invalid threadChatMessage payload")
	}

	msg, err := ct.store.AppendThreadMessage(in.SenderID, in.ThreadID, in.Text)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyText),
			errors.Is(err, store.ErrUserNotFound),
			errors.Is(err, store.ErrThreadNotFound):
			return err
		}
		log.Printf("[chat] persist thread message failed: %v", err)
		return errors.New("failed to save message")
	}

	signal := threadMessagePayload{
		SenderID: msg.SenderID,
		ThreadID: msg.ThreadID,
		Text:     msg.Text,
	}
	ct.publish(ctx, EventThreadChatMessage, signal)
	return nil
}

// publish wraps the payload in the wire envelope and hands it to the bus.
// Broadcast has no error channel: a failed publish is logged and otherwise
// unobserved, matching the gateway's fire-and-forget semantics.
func (ct *Controller) publish(ctx context.Context, event string, data any) {
	envelope, err := json.Marshal(map[string]any{"event": event, "data": data})
	if err != nil {
		log.Printf("[chat] marshal %s failed: %v", event, err)
		return
	}
	if err := ct.bus.Publish(ctx, event, envelope); err != nil {
		log.Printf("[chat] publish %s failed: %v", event, err)
	}
}
