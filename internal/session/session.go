// Package session implements a Redis-backed allowlist of issued access
// tokens. A token is valid only while its ID is present in the store, so
// logout revokes immediately regardless of the JWT expiry.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// Store tracks active sessions keyed by token ID.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewStore creates a session store. ttl bounds how long a session stays
// valid and should match the JWT expiry.
func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(tokenID string) string {
	return keyPrefix + tokenID
}

// Create registers a token ID for the given user.
func (s *Store) Create(ctx context.Context, tokenID string, userID uuid.UUID) error {
	if err := s.client.Set(ctx, key(tokenID), userID.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UserID resolves a token ID to its user. The second return is false when
// the session does not exist or has expired.
func (s *Store) UserID(ctx context.Context, tokenID string) (uuid.UUID, bool, error) {
	value, err := s.client.Get(ctx, key(tokenID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to look up session: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, true, nil
}

// Revoke removes a token ID from the store. Revoking an absent session is
// not an error.
func (s *Store) Revoke(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, key(tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
