package messages

import (
	"github.com/gin-gonic/gin"

	"scholarconnect/controllers"
	"scholarconnect/store"
)

// RegisterProtected registers the direct-message history route, which resolves
// the caller from the session token.
func RegisterProtected(g *gin.RouterGroup, st *store.Store) {
	g.GET("/api/messages", controllers.ListDirectMessages(st))
}

// RegisterPublic registers the thread history route. Like the other forum
// routes, the forum UI fetches it without a session.
func RegisterPublic(r *gin.Engine, st *store.Store) {
	r.GET("/api/messages/:threadId", controllers.ListThreadMessages(st))
}
