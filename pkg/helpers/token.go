package helpers

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenManager signs and verifies the cookie token that binds a
// browser to a server-side session. The token carries the user id and
// session id only; everything else lives in the session store.
type SessionTokenManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewSessionTokenManager(secret string, ttl time.Duration) *SessionTokenManager {
	return &SessionTokenManager{Secret: []byte(secret), TTL: ttl}
}

type SessionClaims struct {
	UserID    int64  `json:"-"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (m *SessionTokenManager) Generate(userID int64, sessionID string) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *SessionTokenManager) Parse(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject")
	}
	claims.UserID = uid
	return claims, nil
}
