package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestParseSession(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	access := signToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"email": "maria@example.com",
		"exp":   exp.Unix(),
	})

	s, err := ParseSession(access, "refresh-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.User.ID != "user-1" {
		t.Errorf("user id = %s, want user-1", s.User.ID)
	}
	if s.User.Email != "maria@example.com" {
		t.Errorf("email = %s", s.User.Email)
	}
	if !s.ExpiresAt.Equal(exp) {
		t.Errorf("expires = %s, want %s", s.ExpiresAt, exp)
	}
	if s.RefreshToken != "refresh-1" {
		t.Errorf("refresh = %s", s.RefreshToken)
	}
}

func TestParseSessionMissingSubject(t *testing.T) {
	access := signToken(t, jwt.MapClaims{"email": "maria@example.com"})

	if _, err := ParseSession(access, ""); err == nil {
		t.Error("expected an error for a token without a subject")
	}
}

func TestParseSessionGarbage(t *testing.T) {
	if _, err := ParseSession("not-a-jwt", ""); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
