package threads

import (
	"github.com/gin-gonic/gin"

	"scholarconnect/controllers"
	"scholarconnect/middleware"
	"scholarconnect/store"
)

// RegisterPublic registers forum thread routes. The forum UI fetches these
// without a session, so they stay outside the auth group.
func RegisterPublic(r *gin.Engine, st *store.Store) {
	r.POST("/api/threads", middleware.RateLimit(), controllers.CreateThread(st))
	r.GET("/api/threads", controllers.ListThreads(st))
}
