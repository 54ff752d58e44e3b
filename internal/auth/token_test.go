package auth

import (
	"errors"
	"testing"
	"time"

	"userbase/internal/domain"
	"userbase/internal/httperr"
)

var tokenUser = &domain.User{
	ID:    "11111111-1111-1111-1111-111111111111",
	Email: "john@example.com",
	Name:  "John Doe",
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Sign(tokenUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ID != tokenUser.ID || claims.Email != tokenUser.Email || claims.Name != tokenUser.Name {
		t.Fatalf("claims do not match user: %+v", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Sign(tokenUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = m.Verify(token)
	assertForbidden(t, err, "token expired")
}

func TestTokenTamperedSignature(t *testing.T) {
	token, err := NewTokenManager("one-secret", time.Hour).Sign(tokenUser)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = NewTokenManager("other-secret", time.Hour).Verify(token)
	assertForbidden(t, err, "invalid token")

	_, err = NewTokenManager("one-secret", time.Hour).Verify("not-a-token")
	assertForbidden(t, err, "invalid token")
}

func assertForbidden(t *testing.T, err error, message string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var herr *httperr.Error
	if !errors.As(err, &herr) {
		t.Fatalf("expected *httperr.Error, got %T (%v)", err, err)
	}
	if herr.Kind != httperr.KindForbidden {
		t.Fatalf("expected forbidden kind, got %v", herr.Kind)
	}
	if herr.Message != message {
		t.Fatalf("expected message %q, got %q", message, herr.Message)
	}
}
