package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/westernstar/blog/internal/container"
	handlers "github.com/westernstar/blog/internal/interface/http"
	"github.com/westernstar/blog/internal/interface/middleware"
)

// AuthModule wires registration, login, and logout.
// Public: GET,POST /register, GET,POST /login
// Session-aware: GET /logout
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get a tight per-IP limiter.
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/register", m.Handler.RegisterForm)
	rg.POST("/register", limiter, m.Handler.Register)
	rg.GET("/login", m.Handler.LoginForm)
	rg.POST("/login", limiter, m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
}
