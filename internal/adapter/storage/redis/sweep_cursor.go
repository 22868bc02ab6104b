package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const sweepCursorKey = "sweep:cursor"

// SweepCursorStore implements ports.SweepCursorStore on a single Redis key.
// The cursor is advisory: if the key is lost the sweeper restarts its scan
// from the beginning, which is safe because expiry is idempotent.
type SweepCursorStore struct {
	client *goredis.Client
}

// NewSweepCursorStore creates a new Redis-backed sweep cursor store.
func NewSweepCursorStore(client *goredis.Client) *SweepCursorStore {
	return &SweepCursorStore{client: client}
}

// Get returns the persisted cursor, or "" when none is set.
func (s *SweepCursorStore) Get(ctx context.Context) (string, error) {
	cursor, err := s.client.Get(ctx, sweepCursorKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get sweep cursor: %w", err)
	}
	return cursor, nil
}

// Set persists the cursor. An empty cursor is stored as a key deletion so a
// fresh scan sees the same state as a never-swept registry.
func (s *SweepCursorStore) Set(ctx context.Context, cursor string) error {
	if cursor == "" {
		if err := s.client.Del(ctx, sweepCursorKey).Err(); err != nil {
			return fmt.Errorf("redis clear sweep cursor: %w", err)
		}
		return nil
	}
	if err := s.client.Set(ctx, sweepCursorKey, cursor, 0).Err(); err != nil {
		return fmt.Errorf("redis set sweep cursor: %w", err)
	}
	return nil
}
