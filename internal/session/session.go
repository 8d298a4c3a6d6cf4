// Package session implements server-side sessions referenced by an opaque
// cookie token.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gameshop-be/internal/cache"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_id"

// TTL is fixed at session creation and never extended by activity.
const TTL = time.Hour

const (
	tokenBytes = 32
	keyPrefix  = "session:"
)

// Data is the snapshot of the user bound to a session at login time.
// The role is not re-read from the store on later requests.
type Data struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// Manager issues, resolves and destroys sessions backed by a cache.
type Manager struct {
	cache cache.Cache
}

// NewManager creates a session manager on top of the given cache.
func NewManager(c cache.Cache) *Manager {
	return &Manager{cache: c}
}

// Create stores a snapshot for the user and returns a new opaque token.
func (m *Manager) Create(ctx context.Context, userID int64, role string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := m.cache.SetJSON(ctx, keyPrefix+token, Data{UserID: userID, Role: role}, TTL); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Resolve returns the snapshot for a token. Missing, expired and destroyed
// tokens all resolve to (nil, nil); the caller treats nil as unauthenticated.
func (m *Manager) Resolve(ctx context.Context, token string) (*Data, error) {
	if token == "" {
		return nil, nil
	}
	var data Data
	err := m.cache.GetJSON(ctx, keyPrefix+token, &data)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return &data, nil
}

// Destroy removes a session. Destroying an absent token is a no-op; only
// an underlying storage error is reported.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if err := m.cache.Delete(ctx, keyPrefix+token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
