package websocket

import (
	"github.com/gin-gonic/gin"

	"scholarconnect/ws"
)

func Register(r *gin.Engine, hub *ws.Hub, handler ws.EventHandler) {
	r.GET("/ws", ws.Serve(hub, handler))
}
