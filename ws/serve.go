package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"scholarconnect/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS handled at HTTP level; allow WS here
		return true
	},
}

// Serve upgrades the connection and attaches the client to the hub. A
// `?token=` JWT is optional: a present-but-invalid token is rejected, while
// a missing one is allowed because the page context is already
// authenticated and events carry their own sender id.
func Serve(h *Hub, handler EventHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint
		if tokenStr := strings.TrimSpace(c.Query("token")); tokenStr != "" {
			uid, _, ok := middleware.ParseUserToken(tokenStr)
			if !ok {
				c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid token"})
				return
			}
			userID = uid
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[ws] upgrade error: %v", err)
			return
		}

		client := &Client{
			hub:     h,
			conn:    conn,
			send:    make(chan []byte, 256),
			handler: handler,
			userID:  userID,
		}
		h.Register(client)
		go client.writePump()
		go client.readPump()
	}
}
