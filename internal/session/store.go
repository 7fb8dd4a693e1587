// Package session holds server-side login state: opaque session records with
// a bounded lifetime, plus the signed cookie token that references them. The
// cookie never carries identity directly; revoking the server record is
// enough to log a client out.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
)

// CookieName matches the cookie the web client already sends.
const CookieName = "sessionId"

const DefaultTTL = 24 * time.Hour

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type Store interface {
	// Create persists a new session for userID before returning it, so a
	// client never holds a cookie for half-established state.
	Create(ctx context.Context, userID string) (*Session, error)
	// Get returns ErrNotFound for unknown and expired ids alike.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
