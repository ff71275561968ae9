package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/westernstar/blog/internal/interface/http"
	"github.com/westernstar/blog/internal/interface/middleware"
)

// BlogModule wires the public reading routes and the admin-only
// management routes. Guards run before handlers, so a refused request
// never reaches the store.
type BlogModule struct {
	Handler *handlers.BlogHandler
}

func NewBlogModule(h *handlers.BlogHandler) *BlogModule {
	return &BlogModule{Handler: h}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/post/:id", m.Handler.GetPost)
	rg.POST("/post/:id", middleware.RequireAuth(), m.Handler.AddComment)
	rg.GET("/search", m.Handler.Search)

	admin := rg.Group("/")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/new-post", m.Handler.NewPostForm)
		admin.POST("/new-post", m.Handler.CreatePost)
		admin.GET("/edit-post/:id", m.Handler.EditPostForm)
		admin.POST("/edit-post/:id", m.Handler.EditPost)
		admin.GET("/delete", m.Handler.DeletePost)
		admin.POST("/upload-image", m.Handler.UploadImage)
	}
}
