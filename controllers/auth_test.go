package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"scholarconnect/middleware"
)

func newAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Register(db))
	r.POST("/login", Login(db))
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/logout", Logout())
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := newAuthRouter(newTestDB(t))

	w := postJSON(r, "/register", `{"name":"Ada","email":"ada@example.edu","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// duplicate email conflicts
	if w := postJSON(r, "/register", `{"name":"Ada Again","email":"ada@example.edu","password":"secret1"}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", w.Code)
	}

	// password must mix letters and digits
	if w := postJSON(r, "/register", `{"name":"Bob","email":"bob@example.edu","password":"lettersonly"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on weak password, got %d", w.Code)
	}

	w = postJSON(r, "/login", `{"email":"ada@example.edu","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		Name        string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.AccessToken == "" || resp.Name != "Ada" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	// token works until logout revokes its jti
	logout := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	r.ServeHTTP(logout, req)
	if logout.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", logout.Code)
	}

	again := httptest.NewRecorder()
	r.ServeHTTP(again, req)
	if again.Code != http.StatusUnauthorized {
		t.Fatalf("expected revoked token rejected, got %d", again.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	r := newAuthRouter(newTestDB(t))

	postJSON(r, "/register", `{"name":"Ada","email":"ada@example.edu","password":"secret1"}`)

	if w := postJSON(r, "/login", `{"email":"ada@example.edu","password":"wrong9"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %d", w.Code)
	}
	if w := postJSON(r, "/login", `{"email":"nobody@example.edu","password":"secret1"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on unknown email, got %d", w.Code)
	}
}
