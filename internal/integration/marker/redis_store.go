// Package marker stores per-goal reminder markers in Redis.
package marker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/centsible/backend/internal/application/adapter"
)

// keyPrefix namespaces marker keys.
const keyPrefix = "reminder:last_contribution:"

// redisStore implements the adapter.ReminderMarkerStore interface. Markers
// are plain unix-nano strings under reminder:last_contribution:{goalID};
// the last writer always wins.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed marker store instance.
func NewRedisStore(client *redis.Client) adapter.ReminderMarkerStore {
	return &redisStore{
		client: client,
	}
}

// Set records ts as the goal's last contribution instant.
func (s *redisStore) Set(ctx context.Context, goalID uuid.UUID, ts time.Time) error {
	value := strconv.FormatInt(ts.UnixNano(), 10)
	if err := s.client.Set(ctx, markerKey(goalID), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set reminder marker: %w", err)
	}
	return nil
}

// Get returns the goal's marker. ok is false when no marker is set.
func (s *redisStore) Get(ctx context.Context, goalID uuid.UUID) (time.Time, bool, error) {
	value, err := s.client.Get(ctx, markerKey(goalID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to get reminder marker: %w", err)
	}

	nanos, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("corrupt reminder marker %q: %w", value, err)
	}

	return time.Unix(0, nanos).UTC(), true, nil
}

// Delete removes the goal's marker.
func (s *redisStore) Delete(ctx context.Context, goalID uuid.UUID) error {
	if err := s.client.Del(ctx, markerKey(goalID)).Err(); err != nil {
		return fmt.Errorf("failed to delete reminder marker: %w", err)
	}
	return nil
}

// markerKey builds the Redis key for a goal's marker.
func markerKey(goalID uuid.UUID) string {
	return keyPrefix + goalID.String()
}
