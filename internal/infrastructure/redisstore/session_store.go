package redisstore

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/westernstar/blog/internal/application"
)

// SessionStore keeps one redis hash per session id, TTL-bound.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *SessionStore) Save(ctx context.Context, id application.Identity, ttl time.Duration) error {
	fields := map[string]any{
		"user_id":    id.UserID,
		"email":      id.Email,
		"name":       id.Name,
		"is_admin":   id.IsAdmin,
		"sid":        id.SessionID,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	key := sessionKey(id.SessionID)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns (nil, nil) when the session does not exist or has expired.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*application.Identity, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	uid, err := strconv.ParseInt(data["user_id"], 10, 64)
	if err != nil {
		return nil, nil
	}
	isAdmin, _ := strconv.ParseBool(data["is_admin"])
	return &application.Identity{
		UserID:    uid,
		Email:     data["email"],
		Name:      data["name"],
		IsAdmin:   isAdmin,
		SessionID: data["sid"],
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

var _ application.SessionStore = (*SessionStore)(nil)
