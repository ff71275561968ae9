package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/internal/interface/middleware"
	"github.com/westernstar/blog/pkg/helpers"
	"github.com/westernstar/blog/pkg/response"
	"github.com/westernstar/blog/pkg/validation"
)

type BlogHandler struct {
	Svc       *application.BlogService
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

type postRequest struct {
	Title    string `form:"title" json:"title" binding:"required"`
	Subtitle string `form:"subtitle" json:"subtitle" binding:"required"`
	Body     string `form:"body" json:"body" binding:"required"`
	ImgURL   string `form:"img_url" json:"img_url" binding:"required,url"`
}

type commentRequest struct {
	Text string `form:"comment" json:"comment" binding:"required"`
}

func (r postRequest) fields() application.PostFields {
	return application.PostFields{Title: r.Title, Subtitle: r.Subtitle, Body: r.Body, ImgURL: r.ImgURL}
}

// Home GET /
func (h *BlogHandler) Home(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load posts", nil)
		return
	}
	response.Success(c, http.StatusOK, toPostViews(posts), "posts", gin.H{"count": len(posts)})
}

// GetPost GET /post/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, comments, err := h.Svc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error[any](c, statusOf(err), "post not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"post":     toPostView(p),
		"comments": toCommentViews(comments),
	}, "post", nil)
}

// AddComment POST /post/:id (authenticated)
func (h *BlogHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.AddComment(c.Request.Context(), middleware.IdentityFrom(c), id, req.Text)
	if err != nil {
		response.Error[any](c, statusOf(err), "failed to add comment", nil)
		return
	}
	response.Success(c, http.StatusCreated, toCommentView(cm), "comment added", nil)
}

// NewPostForm GET /new-post (admin)
func (h *BlogHandler) NewPostForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"fields": []string{"title", "subtitle", "body", "img_url"}}, "new post", nil)
}

// CreatePost POST /new-post (admin)
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreatePost(c.Request.Context(), middleware.IdentityFrom(c), req.fields())
	if err != nil {
		response.Error[any](c, statusOf(err), "failed to create post", nil)
		return
	}
	response.Success(c, http.StatusCreated, toPostView(p), "post created", nil)
}

// EditPostForm GET /edit-post/:id (admin) returns the current values to
// prefill the form.
func (h *BlogHandler) EditPostForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, _, err := h.Svc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error[any](c, statusOf(err), "post not found", nil)
		return
	}
	response.Success(c, http.StatusOK, toPostView(p), "edit post", nil)
}

// EditPost POST /edit-post/:id (admin)
func (h *BlogHandler) EditPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req postRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.EditPost(c.Request.Context(), middleware.IdentityFrom(c), id, req.fields())
	if err != nil {
		response.Error[any](c, statusOf(err), "failed to edit post", nil)
		return
	}
	response.Success(c, http.StatusOK, toPostView(p), "post updated", nil)
}

// DeletePost GET /delete?id= (admin)
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	if err := h.Svc.DeletePost(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		response.Error[any](c, statusOf(err), "failed to delete post", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": id}, "post deleted", nil)
}

// Search GET /search?q=
func (h *BlogHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.SearchPosts(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("post search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

// UploadImage POST /upload-image (admin) stores a cover image in GCS
// and returns its public URL for use as img_url.
func (h *BlogHandler) UploadImage(c *gin.Context) {
	if h.GCS == nil || h.GCSBucket == "" {
		response.Error[any](c, http.StatusServiceUnavailable, "image storage not configured", nil)
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", uuid.NewString()+ext))
	contentType := fh.Header.Get("Content-Type")
	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.GCSBucket, objectPath, contentType, f)
	if err != nil {
		h.Logger.WithError(err).Error("cover upload failed")
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "image uploaded", nil)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return 0, false
	}
	return id, true
}
