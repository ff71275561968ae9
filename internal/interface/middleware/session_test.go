package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubResolver maps tokens to identities.
type stubResolver struct {
	identities map[string]*application.Identity
}

func (r stubResolver) CurrentIdentity(_ context.Context, token string) (*application.Identity, error) {
	return r.identities[token], nil
}

func newTestRouter(resolver IdentityResolver, guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Session(resolver))
	handlers := []gin.HandlerFunc{}
	if guard != nil {
		handlers = append(handlers, guard)
	}
	handlers = append(handlers, func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id.Email)
	})
	r.GET("/probe", handlers...)
	return r
}

func probe(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testResolver() stubResolver {
	return stubResolver{identities: map[string]*application.Identity{
		"admin-token":  {UserID: 1, Email: "admin@example.com", Name: "Admin", IsAdmin: true, SessionID: "s1"},
		"reader-token": {UserID: 2, Email: "reader@example.com", Name: "Reader", SessionID: "s2"},
	}}
}

func TestSessionResolvesIdentity(t *testing.T) {
	t.Parallel()
	r := newTestRouter(testResolver(), nil)

	tests := []struct {
		name     string
		token    string
		wantBody string
	}{
		{"no cookie", "", "anonymous"},
		{"unknown token", "stale-token", "anonymous"},
		{"valid token", "reader-token", "reader@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := probe(r, tt.token)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()
	r := newTestRouter(testResolver(), RequireAuth())

	if w := probe(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", w.Code)
	}
	if w := probe(r, "reader-token"); w.Code != http.StatusOK {
		t.Errorf("authenticated: status = %d, want 200", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()
	r := newTestRouter(testResolver(), RequireAdmin())

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"non-admin", "reader-token", http.StatusForbidden},
		{"admin", "admin-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := probe(r, tt.token); w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}
