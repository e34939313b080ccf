package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"scholarconnect/middleware"
	"scholarconnect/models"
	"scholarconnect/pkg/cache"
	"scholarconnect/pkg/config"
)

const userDirectoryLimit = 50

type userSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListUsers returns the collaborator directory: up to 50 users excluding
// the caller. The listing changes rarely, so it is served from a short-TTL
// cache keyed per caller.
func ListUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)

		key := cache.KeyFromStrings("user-directory", strconv.FormatUint(uint64(uid), 10))
		if v, ok := cache.Default().Get(key); ok {
			if users, ok2 := v.([]userSummary); ok2 {
				c.JSON(http.StatusOK, users)
				return
			}
		}

		var rows []models.User
		if err := db.Select("id, name").Where("id <> ?", uid).Limit(userDirectoryLimit).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error fetching users"})
			return
		}

		users := lo.Map(rows, func(u models.User, _ int) userSummary {
			return userSummary{ID: u.ID, Name: u.Name}
		})
		cache.Default().Set(key, users, time.Duration(config.UserCacheTTLSeconds)*time.Second)
		c.JSON(http.StatusOK, users)
	}
}
