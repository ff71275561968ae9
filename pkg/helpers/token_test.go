package helpers

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()
	m := NewSessionTokenManager("test-secret", time.Hour)

	token, exp, err := m.Generate(42, "sid-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("expiry in the past: %v", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.SessionID != "sid-abc" {
		t.Errorf("session id = %q, want sid-abc", claims.SessionID)
	}
}

func TestSessionTokenRejections(t *testing.T) {
	t.Parallel()
	m := NewSessionTokenManager("test-secret", time.Hour)
	token, _, err := m.Generate(42, "sid-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Wrong key.
	other := NewSessionTokenManager("different-secret", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Error("token signed with another secret accepted")
	}

	// Tampered payload.
	if _, err := m.Parse(token[:len(token)-2] + "xx"); err == nil {
		t.Error("tampered token accepted")
	}

	// Not a token at all.
	if _, err := m.Parse("garbage"); err == nil {
		t.Error("garbage token accepted")
	}

	// Expired.
	expired := NewSessionTokenManager("test-secret", -time.Minute)
	dead, _, err := expired.Generate(42, "sid-abc")
	if err != nil {
		t.Fatalf("generate expired: %v", err)
	}
	if _, err := m.Parse(dead); err == nil {
		t.Error("expired token accepted")
	}
}
