package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/westernstar/blog/internal/domain/entity"
	"github.com/westernstar/blog/internal/domain/repository"
	"github.com/westernstar/blog/pkg/helpers"
)

// AuthService covers registration, login, and session lifecycle.
type AuthService struct {
	Users      repository.UserRepository
	Sessions   SessionStore
	Tokens     *helpers.SessionTokenManager
	SessionTTL time.Duration
	Logger     *logrus.Logger
}

func NewAuthService(users repository.UserRepository, sessions SessionStore, tokens *helpers.SessionTokenManager, ttl time.Duration, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Tokens: tokens, SessionTTL: ttl, Logger: logger}
}

// Session is an established login: the identity plus the signed cookie
// token that references it.
type Session struct {
	Identity  Identity
	Token     string
	ExpiresAt time.Time
}

// Register creates an account and logs it in. The first account ever
// created becomes the administrator; the repository decides that
// atomically at insert time.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "admin": u.IsAdmin}).Info("user registered")
	return s.establish(ctx, u)
}

// Login authenticates email/password. Unknown-email and bad-password
// failures stay distinct here for logging; callers present both as one
// generic invalid-credentials message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.Logger.WithField("email", email).Warn("login with unknown email")
			return nil, ErrUnknownEmail
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		s.Logger.WithField("user_id", u.ID).Warn("login with wrong password")
		return nil, ErrBadPassword
	}
	return s.establish(ctx, u)
}

// Logout tears down the server-side session. Unknown session ids are a
// no-op; the request ends anonymous either way.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, sessionID)
}

// CurrentIdentity resolves a session token to the identity it
// references. Returns (nil, nil) for anonymous requests: missing or
// invalid tokens and expired sessions all land there.
func (s *AuthService) CurrentIdentity(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return nil, nil
	}
	id, err := s.Sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if id == nil || id.UserID != claims.UserID {
		return nil, nil
	}
	return id, nil
}

func (s *AuthService) establish(ctx context.Context, u *entity.User) (*Session, error) {
	sid := uuid.NewString()
	id := identityOf(u, sid)
	if err := s.Sessions.Save(ctx, id, s.SessionTTL); err != nil {
		return nil, err
	}
	token, exp, err := s.Tokens.Generate(u.ID, sid)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		return nil, err
	}
	return &Session{Identity: id, Token: token, ExpiresAt: exp}, nil
}
