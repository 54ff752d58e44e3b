package schema

import (
	"errors"
	"strings"
	"testing"

	"userbase/internal/httperr"
)

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var herr *httperr.Error
	if !errors.As(err, &herr) {
		t.Fatalf("expected *httperr.Error, got %T (%v)", err, err)
	}
	if herr.Kind != httperr.KindValidation {
		t.Fatalf("expected validation kind, got %v", herr.Kind)
	}
	return herr.Message
}

func TestUsernameValid(t *testing.T) {
	got, err := Username("  John_Doe42 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "john_doe42" {
		t.Fatalf("expected lower-cased username, got %q", got)
	}
}

func TestUsernameRules(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "username: Username is required"},
		{"  ", "username: Username is required"},
		{"ab", "username: Username must be atleast 3 characters"},
		{strings.Repeat("a", 31), "username: Username cannot exceed 30 characters"},
		{"john.doe", "username: Username can only contain letters, numbers and underscores"},
		{"john doe", "username: Username can only contain letters, numbers and underscores"},
	}
	for _, tc := range cases {
		_, err := Username(tc.in)
		if err == nil {
			t.Fatalf("expected error for %q", tc.in)
		}
		if got := validationMessage(t, err); got != tc.want {
			t.Fatalf("username %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestRegisterValid(t *testing.T) {
	got, err := Register(RegisterRequest{
		Email:    "  John.Doe@Example.COM ",
		Name:     " John Doe ",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "john.doe@example.com" {
		t.Fatalf("expected lower-cased trimmed email, got %q", got.Email)
	}
	if got.Name != "John Doe" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
}

func TestRegisterEmptyPayloadMessageOrder(t *testing.T) {
	_, err := Register(RegisterRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	want := "email: Email is required, name: Name is required, password: Password is required"
	if got := validationMessage(t, err); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRegisterFieldMessages(t *testing.T) {
	cases := []struct {
		name string
		req  RegisterRequest
		want string
	}{
		{
			"invalid email",
			RegisterRequest{Email: "not-an-email", Name: "x", Password: "secret123"},
			"email: Please provide a valid email address",
		},
		{
			"short password",
			RegisterRequest{Email: "a@b.co", Name: "x", Password: "short"},
			"password: Password must be atleast 6 characters",
		},
		{
			"missing name",
			RegisterRequest{Email: "a@b.co", Password: "secret123"},
			"name: Name is required",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Register(tc.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := validationMessage(t, err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	got, err := Login(LoginRequest{Email: " USER@Example.com ", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "user@example.com" {
		t.Fatalf("expected lower-cased email, got %q", got.Email)
	}

	_, err = Login(LoginRequest{})
	want := "email: Email is required, password: Password is required"
	if got := validationMessage(t, err); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
