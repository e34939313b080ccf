package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Envelope is the wire frame for both directions:
// {"event": "chatMessage"|"threadChatMessage", "data": {...}}.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// EventHandler consumes inbound client events. Returned errors are reported
// only to the submitting client; nothing is broadcast on failure.
type EventHandler interface {
	HandleEvent(ctx context.Context, event string, data json.RawMessage) error
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	handler EventHandler

	// userID is the authenticated page identity, 0 when the client connected
	// without a token. Event payloads carry their own senderId, which is
	// trusted as-is; see the gateway's documented auth weakness.
	userID uint
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error: %v", err)
			}
			return
		}
		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Event == "" {
			c.reply("invalid envelope")
			continue
		}
		if err := c.handler.HandleEvent(context.Background(), env.Event, env.Data); err != nil {
			c.reply(err.Error())
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// reply sends an error event to this client only.
func (c *Client) reply(msg string) {
	payload, _ := json.Marshal(map[string]any{
		"event": "error",
		"data":  map[string]string{"msg": msg},
	})
	select {
	case c.send <- payload:
	default:
	}
}
