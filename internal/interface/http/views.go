package handlers

import (
	"errors"
	"net/http"

	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/internal/domain/entity"
	"github.com/westernstar/blog/pkg/helpers"
)

// View DTOs returned in response envelopes. Dates carry the
// "Month DD, YYYY" display contract.

type authorView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type postView struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Body     string     `json:"body"`
	ImgURL   string     `json:"img_url"`
	Date     string     `json:"date"`
	Author   authorView `json:"author"`
}

type commentView struct {
	ID     int64      `json:"id"`
	PostID int64      `json:"post_id"`
	Text   string     `json:"text"`
	Date   string     `json:"date"`
	Author authorView `json:"author"`
}

func toPostView(p *entity.Post) postView {
	v := postView{
		ID:       p.ID,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Body:     p.Body,
		ImgURL:   p.ImgURL,
		Date:     helpers.DisplayDate(p.CreatedAt),
	}
	if p.Author != nil {
		v.Author = authorView{ID: p.Author.ID, Name: p.Author.Name}
	} else {
		v.Author = authorView{ID: p.AuthorID}
	}
	return v
}

func toPostViews(posts []*entity.Post) []postView {
	out := make([]postView, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostView(p))
	}
	return out
}

func toCommentView(c *entity.Comment) commentView {
	v := commentView{
		ID:     c.ID,
		PostID: c.PostID,
		Text:   c.Text,
		Date:   helpers.DisplayDate(c.CreatedAt),
	}
	if c.Author != nil {
		v.Author = authorView{ID: c.Author.ID, Name: c.Author.Name}
	} else {
		v.Author = authorView{ID: c.AuthorID}
	}
	return v
}

func toCommentViews(comments []*entity.Comment) []commentView {
	out := make([]commentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentView(c))
	}
	return out
}

// statusOf maps application errors onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrDuplicateEmail), errors.Is(err, application.ErrDuplicateTitle):
		return http.StatusConflict
	case errors.Is(err, application.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
