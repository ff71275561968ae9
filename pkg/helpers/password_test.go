package helpers

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("unexpected hash format: %q", hash)
	}

	if !CompareHashAndPassword(hash, "password123") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "wrongpassword") {
		t.Error("wrong password accepted")
	}
	if CompareHashAndPassword("not-a-hash", "password123") {
		t.Error("garbage hash accepted")
	}
}
