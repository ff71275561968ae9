package application

import (
	"context"
	"time"

	"github.com/westernstar/blog/internal/domain/entity"
)

// Identity is the request-scoped view of a logged-in user. It is stored
// server-side under a random session id and threaded through handler
// contexts; there is no process-global current user.
type Identity struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
	SessionID string `json:"sid"`
}

// SessionStore persists sessions keyed by session id. Get returns
// (nil, nil) when no session exists; that is an anonymous request, not
// an error.
type SessionStore interface {
	Save(ctx context.Context, id Identity, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Identity, error)
	Delete(ctx context.Context, sessionID string) error
}

func identityOf(u *entity.User, sid string) Identity {
	return Identity{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsAdmin:   u.IsAdmin,
		SessionID: sid,
	}
}
