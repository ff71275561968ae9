package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/westernstar/blog/internal/application"
	"github.com/westernstar/blog/internal/domain/entity"
)

func TestToPostView(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, time.April, 5, 10, 0, 0, 0, time.UTC)
	p := &entity.Post{
		ID:        3,
		AuthorID:  1,
		Author:    &entity.User{ID: 1, Name: "Admin"},
		Title:     "Hello",
		Subtitle:  "World",
		Body:      "...",
		ImgURL:    "http://x/y.png",
		CreatedAt: created,
	}
	v := toPostView(p)
	if v.Date != "April 05, 2024" {
		t.Errorf("date = %q", v.Date)
	}
	if v.Author.ID != 1 || v.Author.Name != "Admin" {
		t.Errorf("author = %+v", v.Author)
	}

	// Author not loaded: fall back to the id alone.
	p.Author = nil
	v = toPostView(p)
	if v.Author.ID != 1 || v.Author.Name != "" {
		t.Errorf("fallback author = %+v", v.Author)
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{application.ErrNotFound, http.StatusNotFound},
		{application.ErrForbidden, http.StatusForbidden},
		{application.ErrAuthRequired, http.StatusUnauthorized},
		{application.ErrDuplicateEmail, http.StatusConflict},
		{application.ErrDuplicateTitle, http.StatusConflict},
		{application.ErrValidationFailed, http.StatusBadRequest},
		{application.ErrDeliveryFailed, http.StatusBadGateway},
		{errors.New("surprise"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusOf(tt.err); got != tt.want {
			t.Errorf("statusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
