package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/internal/interface/middleware"
	"github.com/westernstar/blog/pkg/helpers"
	"github.com/westernstar/blog/pkg/response"
	"github.com/westernstar/blog/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookieManager(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// RegisterForm GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"fields": []string{"name", "email", "password"}}, "register", nil)
}

// Register POST /register. A duplicate email routes the caller to the
// login flow with a notice instead of a hard failure.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateEmail) {
			response.Error[any](c, http.StatusConflict, "You have already made an account. Please login.", gin.H{"redirect": "/login"})
			return
		}
		response.Error[any](c, statusOf(err), "registration failed", nil)
		return
	}
	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	response.Success(c, http.StatusCreated, sess.Identity, "registered", nil)
}

// LoginForm GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"fields": []string{"email", "password"}}, "login", nil)
}

// Login POST /login. Unknown email and wrong password are logged apart
// but answered with the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUnknownEmail) || errors.Is(err, application.ErrBadPassword) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		response.Error[any](c, statusOf(err), "login failed", nil)
		return
	}
	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	response.Success(c, http.StatusOK, sess.Identity, "login successful", nil)
}

// Logout GET /logout. Always ends with an anonymous client, even when
// no session existed.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id := middleware.IdentityFrom(c); id != nil {
		if err := h.Svc.Logout(c.Request.Context(), id.SessionID); err != nil {
			h.Logger.WithError(err).Warn("session delete failed")
		}
	}
	h.Cookies.ClearSession(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}
