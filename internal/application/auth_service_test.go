package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/westernstar/blog/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuthFixture() (*AuthService, *memStore, *memSessions) {
	store := newMemStore()
	sessions := newMemSessions()
	tokens := helpers.NewSessionTokenManager("test-secret", time.Hour)
	svc := NewAuthService(memUsers{store}, sessions, tokens, time.Hour, quietLogger())
	return svc, store, sessions
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	t.Parallel()
	svc, store, _ := newAuthFixture()
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !sess.Identity.IsAdmin {
		t.Error("first registered user should be admin")
	}
	if sess.Token == "" {
		t.Error("expected a session token")
	}

	sess2, err := svc.Register(ctx, "Bob", "bob@example.com", "password123")
	if err != nil {
		t.Fatalf("register second: %v", err)
	}
	if sess2.Identity.IsAdmin {
		t.Error("second registered user must not be admin")
	}
	if n, _ := (memUsers{store}).Count(ctx); n != 2 {
		t.Errorf("expected 2 users, got %d", n)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, store, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "password123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, "Imposter", "ada@example.com", "different456")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if n, _ := (memUsers{store}).Count(ctx); n != 1 {
		t.Errorf("duplicate registration created a user: count=%d", n)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "password123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "ada@example.com", "password123", nil},
		{"unknown email", "ghost@example.com", "password123", ErrUnknownEmail},
		{"wrong password", "ada@example.com", "wrongpassword", ErrBadPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("login: %v", err)
				}
				if sess.Identity.Email != tt.email {
					t.Errorf("identity email = %q, want %q", sess.Identity.Email, tt.email)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCurrentIdentity(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	id, err := svc.CurrentIdentity(ctx, sess.Token)
	if err != nil {
		t.Fatalf("current identity: %v", err)
	}
	if id == nil || id.UserID != sess.Identity.UserID {
		t.Fatalf("identity mismatch: %+v", id)
	}

	// Garbage and empty tokens resolve to anonymous, not errors.
	for _, token := range []string{"", "not-a-token"} {
		id, err := svc.CurrentIdentity(ctx, token)
		if err != nil || id != nil {
			t.Errorf("token %q: expected anonymous, got id=%v err=%v", token, id, err)
		}
	}
}

func TestLogoutEndsSession(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(ctx, sess.Identity.SessionID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	id, err := svc.CurrentIdentity(ctx, sess.Token)
	if err != nil {
		t.Fatalf("current identity: %v", err)
	}
	if id != nil {
		t.Error("expected anonymous after logout")
	}

	// Logout of a dead or empty session is a no-op.
	if err := svc.Logout(ctx, sess.Identity.SessionID); err != nil {
		t.Errorf("repeat logout: %v", err)
	}
	if err := svc.Logout(ctx, ""); err != nil {
		t.Errorf("empty logout: %v", err)
	}
}
