package ws

import (
	"log"

	"scholarconnect/bus"
)

// Hub owns the connection registry for this process. Clients register on
// connect and deregister on disconnect; fan-out arrives through the bus so
// that broadcasts also reach clients connected to other instances when the
// Redis backplane is configured.
//
// Broadcasts are global: every connected client receives every event and
// filters for its active conversation. Recipient-side filtering is a known
// open question, kept as-is.
type Hub struct {
	bus bus.Bus

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub(b bus.Bus, topics ...string) *Hub {
	h := &Hub{
		bus:        b,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
	for _, topic := range topics {
		b.Subscribe(topic, func(_ string, payload []byte) {
			h.enqueue(payload)
		})
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			log.Printf("[ws] client registered: user=%d", c.userID)
		case c := <-h.unregister:
			if h.clients[c] {
				h.removeClient(c)
				log.Printf("[ws] client deregistered: user=%d", c.userID)
			}
		case payload := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- payload:
				default:
					// slow consumer; drop the connection, client reconnects
					h.removeClient(c)
				}
			}
		}
	}
}

// removeClient drops a client from the registry and closes its send channel;
// only the run loop may call it.
func (h *Hub) removeClient(c *Client) {
	delete(h.clients, c)
	close(c.send)
}

// enqueue hands a payload to the fan-out loop without blocking the bus
// delivery goroutine. Undeliverable payloads are dropped, not replayed.
func (h *Hub) enqueue(payload []byte) {
	select {
	case h.broadcast <- payload:
	default:
		log.Printf("[ws] broadcast queue full, dropping payload")
	}
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }
