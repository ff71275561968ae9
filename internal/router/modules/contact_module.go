package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/westernstar/blog/internal/container"
	handlers "github.com/westernstar/blog/internal/interface/http"
	"github.com/westernstar/blog/internal/interface/middleware"
)

// ContactModule wires the static pages and the contact form.
type ContactModule struct {
	Contact *handlers.ContactHandler
	Pages   *handlers.PageHandler
}

func NewContactModule(contact *handlers.ContactHandler, pages *handlers.PageHandler) *ContactModule {
	return &ContactModule{Contact: contact, Pages: pages}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// The relay is synchronous and external; keep the submit rate low.
	limiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/about", m.Pages.About)
	rg.GET("/contact", m.Contact.Form)
	rg.POST("/contact", limiter, m.Contact.Submit)
}
