package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"scholarconnect/models"
	"scholarconnect/pkg/config"
	"scholarconnect/store"
)

// CreateThread creates a forum thread with a unique title.
func CreateThread(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Title string `json:"title"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		thread, err := s.CreateThread(body.Title)
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, gin.H{"msg": "Thread created successfully!", "threadId": thread.ID})
		case errors.Is(err, store.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Title is required."})
		case errors.Is(err, store.ErrDuplicateTitle):
			c.JSON(http.StatusConflict, gin.H{"msg": "Thread already exists."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal Server Error"})
		}
	}
}

// ListThreads returns the most recently created threads, newest first.
func ListThreads(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		threads, err := s.ListThreads(config.HistoryPageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load threads"})
			return
		}
		c.JSON(http.StatusOK, lo.Map(threads, func(t models.Thread, _ int) gin.H {
			return gin.H{
				"id":        t.ID,
				"title":     t.Title,
				"createdAt": t.CreatedOn.Format("2006-01-02"),
			}
		}))
	}
}
