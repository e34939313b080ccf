package profile

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"scholarconnect/controllers"
)

// Register registers profile routes (protected).
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/api/profile", controllers.Profile(db))
	g.PUT("/api/profile", controllers.Profile(db))
}
