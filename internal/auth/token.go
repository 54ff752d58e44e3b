package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userbase/internal/domain"
	"userbase/internal/httperr"
)

// Claims is the session token payload. The fields are signed, not
// encrypted; anything placed here is readable by the token holder.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with a server-held HMAC
// secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime stamped into signed tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Sign issues a token asserting the user's identity, expiring after the
// configured TTL.
func (m *TokenManager) Sign(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses the token and checks its signature and expiry. Expired
// tokens and tokens with a bad signature both fail as Forbidden, with
// distinct messages.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, httperr.Forbidden("token expired")
		}
		return nil, httperr.Forbidden("invalid token")
	}
	return claims, nil
}
