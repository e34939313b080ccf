package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"scholarconnect/middleware"
	"scholarconnect/models"
)

// Profile serves GET (read) and PUT (update name/bio) for the current user.
func Profile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)

		var user models.User
		if err := db.First(&user, uid).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}

		if c.Request.Method == http.MethodGet {
			c.JSON(http.StatusOK, gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"bio":   user.Bio,
			})
			return
		}

		// PUT
		var body struct {
			Name string `json:"name"`
			Bio  string `json:"bio"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		if name := strings.TrimSpace(body.Name); name != "" {
			user.Name = name
		}
		if bio := strings.TrimSpace(body.Bio); bio != "" {
			user.Bio = bio
		}
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "Profile updated", "name": user.Name, "bio": user.Bio})
	}
}
