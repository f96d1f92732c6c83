// Package session holds the authenticated console session. It replaces any
// ambient role/identity lookup: the session is created at login, injected
// into the pages that need it, and cleared at logout.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Session is the current authenticated identity.
type Session struct {
	Token     string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// FromToken builds a Session from the bearer token returned by the backend.
// The token is parsed without signature verification — the console has no
// key and only needs the display claims; the backend re-validates every
// request anyway.
func FromToken(token string) (*Session, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	s := &Session{Token: token}
	if v, ok := claims["email"].(string); ok {
		s.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		s.Role = v
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}

// Expired reports whether the token has an expiry in the past.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// IsAdmin reports whether the session may manage admin accounts.
func (s *Session) IsAdmin() bool {
	return s.Role == "admin" || s.Role == "superadmin"
}

func (s *Session) String() string {
	if s == nil {
		return ""
	}
	if s.Role != "" {
		return fmt.Sprintf("%s (%s)", s.Email, s.Role)
	}
	return s.Email
}
