package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "docbot_visitor"

var ErrInvalidToken = errors.New("invalid visitor token")

// TokenSigner issues and verifies the visitor cookie. The token only carries
// the visitor id; all state stays server-side.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner uses secret when set, otherwise a random per-process key
// (cookies then stop validating after a restart, which matches the
// in-memory store).
func NewTokenSigner(secret string, ttl time.Duration) (*TokenSigner, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}
	return &TokenSigner{secret: key, ttl: ttl}, nil
}

func (s *TokenSigner) Issue(visitorID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   visitorID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenSigner) Parse(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *TokenSigner) MaxAge() int {
	return int(s.ttl.Seconds())
}
