// Package schema normalizes and validates the request payloads. Each shape
// has one plain function that trims its inputs, applies lower-casing where
// the field demands it, and either returns the normalized value or a
// validation error carrying one message per violated field.
package schema

import (
	"regexp"
	"strings"

	"userbase/internal/httperr"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Username validates the username shape and returns it lower-cased.
func Username(raw string) (string, error) {
	username := strings.TrimSpace(raw)

	var message string
	switch {
	case username == "":
		message = "Username is required"
	case len(username) < 3:
		message = "Username must be atleast 3 characters"
	case len(username) > 30:
		message = "Username cannot exceed 30 characters"
	case !usernamePattern.MatchString(username):
		message = "Username can only contain letters, numbers and underscores"
	}
	if message != "" {
		return "", httperr.Validation([]httperr.FieldError{{Field: "username", Message: message}})
	}

	return strings.ToLower(username), nil
}

// Register validates the signup payload and returns it with the email
// lower-cased.
func Register(req RegisterRequest) (RegisterRequest, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Password = strings.TrimSpace(req.Password)

	var fields []httperr.FieldError
	if msg := emailMessage(req.Email); msg != "" {
		fields = append(fields, httperr.FieldError{Field: "email", Message: msg})
	}
	if req.Name == "" {
		fields = append(fields, httperr.FieldError{Field: "name", Message: "Name is required"})
	}
	if msg := passwordMessage(req.Password); msg != "" {
		fields = append(fields, httperr.FieldError{Field: "password", Message: msg})
	}
	if len(fields) > 0 {
		return RegisterRequest{}, httperr.Validation(fields)
	}

	req.Email = strings.ToLower(req.Email)
	return req, nil
}

// Login validates the login payload and returns it with the email
// lower-cased.
func Login(req LoginRequest) (LoginRequest, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)

	var fields []httperr.FieldError
	if msg := emailMessage(req.Email); msg != "" {
		fields = append(fields, httperr.FieldError{Field: "email", Message: msg})
	}
	if msg := passwordMessage(req.Password); msg != "" {
		fields = append(fields, httperr.FieldError{Field: "password", Message: msg})
	}
	if len(fields) > 0 {
		return LoginRequest{}, httperr.Validation(fields)
	}

	req.Email = strings.ToLower(req.Email)
	return req, nil
}

func emailMessage(email string) string {
	switch {
	case email == "":
		return "Email is required"
	case !emailPattern.MatchString(email):
		return "Please provide a valid email address"
	}
	return ""
}

func passwordMessage(password string) string {
	switch {
	case password == "":
		return "Password is required"
	case len(password) < 6:
		return "Password must be atleast 6 characters"
	}
	return ""
}
