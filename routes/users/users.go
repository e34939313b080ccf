package users

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"scholarconnect/controllers"
)

// Register registers the collaborator directory route (protected).
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/api/users", controllers.ListUsers(db))
}
