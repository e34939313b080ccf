package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"scholarconnect/bus"
	"scholarconnect/chat"
	"scholarconnect/models"
	"scholarconnect/store"
	"scholarconnect/ws"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Thread{}, &models.ThreadMessage{}, &models.DirectMessage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	b := bus.NewMemory()
	st := store.New(db)
	hub := ws.NewHub(b, chat.EventChatMessage, chat.EventThreadChatMessage)
	controller := chat.NewController(st, b)

	r := gin.New()
	RegisterRoutes(r, db, st, hub, controller)
	return r
}

// Thread history is part of the public forum surface, so fetching it must not
// require a session.
func TestThreadHistoryReadableWithoutSession(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages/42", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestDirectMessageHistoryRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages?selectedUserId=2", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
