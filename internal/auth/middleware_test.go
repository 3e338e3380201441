package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// okHandler records the userID it saw in the request context.
func okHandler(gotUserID *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := UserIDFromContext(r.Context()); ok {
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	ts := newTestTokenService(t)
	token, _ := ts.Generate("user-77")

	var seen string
	handler := RequireAuth(ts)(okHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/username", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if seen != "user-77" {
		t.Errorf("handler saw userID %q, want %q", seen, "user-77")
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	ts := newTestTokenService(t)

	var seen string
	handler := RequireAuth(ts)(okHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/username", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if seen != "" {
		t.Error("handler ran despite missing token")
	}

	// The 401 body follows the same {"error","message"} shape as every
	// handler error response.
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("401 body is not JSON: %v", err)
	}
	if body.Error != "unauthorized" {
		t.Errorf("body.Error = %q, want %q", body.Error, "unauthorized")
	}
	if body.Message == "" {
		t.Error("401 body carries no message")
	}
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	ts := newTestTokenService(t)
	token, _ := ts.Generate("user-77")

	handler := RequireAuth(ts)(okHandler(new(string)))

	req := httptest.NewRequest(http.MethodGet, "/username", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	ts := newTestTokenService(t)
	token, _ := ts.GenerateWithDuration("user-77", -time.Second)

	var seen string
	handler := RequireAuth(ts)(okHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/folders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if seen != "" {
		t.Error("handler ran despite expired token")
	}
}

func TestUserIDFromContext_Anonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id, ok := UserIDFromContext(req.Context()); ok || id != "" {
		t.Errorf("UserIDFromContext() = (%q, %v), want (\"\", false)", id, ok)
	}
}
