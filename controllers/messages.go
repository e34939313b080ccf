package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"scholarconnect/middleware"
	"scholarconnect/models"
	"scholarconnect/pkg/config"
	"scholarconnect/store"
)

// ListDirectMessages returns the full conversation between the
// authenticated user and ?selectedUserId=<id>, oldest first.
func ListDirectMessages(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CurrentUserID(c)

		selected := c.Query("selectedUserId")
		if selected == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required parameters."})
			return
		}
		peerID, err := strconv.ParseUint(selected, 10, 64)
		if err != nil || peerID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid selectedUserId."})
			return
		}

		msgs, err := s.ListDirectMessages(uid, uint(peerID), 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error fetching messages."})
			return
		}

		c.JSON(http.StatusOK, lo.Map(msgs, func(m models.DirectMessage, _ int) gin.H {
			return gin.H{
				"senderId":  m.SenderID,
				"content":   m.Text,
				"createdAt": m.Timestamp,
			}
		}))
	}
}

// ListThreadMessages returns the newest page of a thread's messages joined
// with sender names. An unknown or empty thread yields 200 with [].
func ListThreadMessages(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		threadIDStr := c.Param("threadId")
		threadID, err := strconv.ParseUint(threadIDStr, 10, 64)
		if err != nil || threadID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Thread ID is required"})
			return
		}

		rows, err := s.ListThreadMessages(uint(threadID), config.HistoryPageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal Server Error"})
			return
		}
		if rows == nil {
			rows = []store.ThreadMessageRow{}
		}
		c.JSON(http.StatusOK, rows)
	}
}
