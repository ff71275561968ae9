package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/westernstar/blog/internal/domain/entity"
	"github.com/westernstar/blog/internal/domain/repository"
)

// BlogService owns post and comment management, including the
// authorization gate: management operations verify the caller before
// touching the store.
type BlogService struct {
	Posts        repository.PostRepository
	Comments     repository.CommentRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewBlogService(posts repository.PostRepository, comments repository.CommentRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string) *BlogService {
	return &BlogService{Posts: posts, Comments: comments, Logger: logger, ES: es, ESPostsIndex: esPostsIndex}
}

// PostFields are the author-supplied attributes of a post.
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

func (s *BlogService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	return s.Posts.List(ctx)
}

// GetPost returns the post and its comments, oldest first.
func (s *BlogService) GetPost(ctx context.Context, id int64) (*entity.Post, []*entity.Comment, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	comments, err := s.Comments.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return p, comments, nil
}

// CreatePost is admin-only. The gate runs before any store mutation.
func (s *BlogService) CreatePost(ctx context.Context, author *Identity, fields PostFields) (*entity.Post, error) {
	if err := requireAdmin(author); err != nil {
		return nil, err
	}
	p := &entity.Post{
		AuthorID: author.UserID,
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Body:     fields.Body,
		ImgURL:   fields.ImgURL,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "title": p.Title}).Info("post created")
	s.indexPost(ctx, p)
	return p, nil
}

// EditPost is admin-only. Editing always reassigns the post's author to
// the editor; that is the documented policy, not an accident.
func (s *BlogService) EditPost(ctx context.Context, editor *Identity, id int64, fields PostFields) (*entity.Post, error) {
	if err := requireAdmin(editor); err != nil {
		return nil, err
	}
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Title = fields.Title
	p.Subtitle = fields.Subtitle
	p.Body = fields.Body
	p.ImgURL = fields.ImgURL
	p.AuthorID = editor.UserID
	p.Author = nil
	if err := s.Posts.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrDuplicateTitle
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "editor": editor.UserID}).Info("post edited")
	s.indexPost(ctx, p)
	return p, nil
}

// DeletePost is admin-only. Dependent comments are removed with the
// post (cascade policy).
func (s *BlogService) DeletePost(ctx context.Context, caller *Identity, id int64) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.Logger.WithField("post_id", id).Info("post deleted")
	s.deindexPost(ctx, id)
	return nil
}

// AddComment requires any authenticated identity, not just the admin.
func (s *BlogService) AddComment(ctx context.Context, author *Identity, postID int64, text string) (*entity.Comment, error) {
	if author == nil {
		return nil, ErrAuthRequired
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidationFailed
	}
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c := &entity.Comment{PostID: postID, AuthorID: author.UserID, Text: text}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func requireAdmin(id *Identity) error {
	if id == nil {
		return ErrAuthRequired
	}
	if !id.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// SearchPosts runs a multi_match query over title, subtitle, and body.
// Returns an empty result when Elasticsearch is not configured.
func (s *BlogService) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "subtitle", "body"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// indexPost is best-effort; search lags behind the store rather than
// failing a write.
func (s *BlogService) indexPost(ctx context.Context, p *entity.Post) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         p.ID,
		"title":      p.Title,
		"subtitle":   p.Subtitle,
		"body":       p.Body,
		"author_id":  p.AuthorID,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: strconv.FormatInt(p.ID, 10), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
}

func (s *BlogService) deindexPost(ctx context.Context, id int64) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}
