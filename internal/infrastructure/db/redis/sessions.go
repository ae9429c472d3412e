package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the registry of active sessions.
// Key format: session:<session_id> → user id, expiring with the token.
// Deleting the key invalidates the session before its JWT expires.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put records an active session.
func (s *SessionStore) Put(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(sessionID), userID, ttl).Err()
}

// Delete removes a session, logging the holder out everywhere.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// Get returns the user id behind a session, or "" when the session is not
// active (expired, logged out, or never existed).
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session lookup: %w", err)
	}
	return userID, nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
