// Package session implements the server-side session store. Both the cookie
// session id and the opaque bearer token issued at login are keys into the
// same store, so either one resolves the caller's identity.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"tallypos/internal/model"
)

// ErrNotFound is returned by Get for unknown, revoked, or expired tokens.
var ErrNotFound = errors.New("session: token not found")

// Identity is what a token resolves to.
type Identity struct {
	UserID   int64      `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// Store maps opaque tokens to identities with a TTL. A memory-backed
// implementation serves single-instance deployments; the redis-backed one
// allows sharding across processes.
type Store interface {
	Put(ctx context.Context, token string, id Identity, ttl time.Duration) error
	Get(ctx context.Context, token string) (*Identity, error)
	Revoke(ctx context.Context, token string) error
}

// NewToken returns a 256-bit random URL-safe token.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
