package auth

import (
	"fmt"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie used by the web surface.
const CookieName = "fc_session"

// SessionUser is the verified identity carried by a session token.
type SessionUser struct {
	ID    string
	Email string
	Name  string
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies signed session tokens. It is constructed once
// in main and passed to the server explicitly; there is no ambient session
// state.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessions creates the session service.
func NewSessions(cfg *config.Config) *Sessions {
	return &Sessions{
		secret: []byte(cfg.SessionSecret),
		ttl:    cfg.SessionTTL,
		now:    time.Now,
	}
}

// TTL returns the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session token for the user.
func (s *Sessions) Issue(user User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning the session user.
func (s *Sessions) Verify(tokenString string) (*SessionUser, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return &SessionUser{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
