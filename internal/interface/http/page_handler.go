package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/westernstar/blog/pkg/response"
)

// PageHandler serves the static informational pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// About GET /about
func (h *PageHandler) About(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"page": "about"}, "about", nil)
}
