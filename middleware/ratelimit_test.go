package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitExhaustion(t *testing.T) {
	SetRateLimitConfig(10*time.Second, 2)
	defer SetRateLimitConfig(10*time.Second, 5)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/limited", RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after bucket drained, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRateLimitRefill(t *testing.T) {
	SetRateLimitConfig(100*time.Millisecond, 1)
	defer SetRateLimitConfig(10*time.Second, 5)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/limited", RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}

	time.Sleep(150 * time.Millisecond)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected request to pass after refill, got %d", w.Code)
	}
}
