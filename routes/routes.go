package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"scholarconnect/middleware"
	"scholarconnect/store"
	"scholarconnect/ws"

	authRoutes "scholarconnect/routes/auth"
	messageRoutes "scholarconnect/routes/messages"
	profileRoutes "scholarconnect/routes/profile"
	threadRoutes "scholarconnect/routes/threads"
	userRoutes "scholarconnect/routes/users"
	websocketRoutes "scholarconnect/routes/websocket"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, st *store.Store, hub *ws.Hub, handler ws.EventHandler) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Scholar Connect messaging backend running"})
	})

	websocketRoutes.Register(r, hub, handler)
	authRoutes.RegisterPublic(r, db)
	threadRoutes.RegisterPublic(r, st)
	messageRoutes.RegisterPublic(r, st)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	authRoutes.RegisterProtected(protected)
	profileRoutes.Register(protected, db)
	userRoutes.Register(protected, db)
	messageRoutes.RegisterProtected(protected, st)
}
