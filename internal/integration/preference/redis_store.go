// Package preference stores per-user settings in Redis.
package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/centsible/backend/internal/application/adapter"
)

// keyPrefix namespaces preference keys.
const keyPrefix = "preference:"

// redisStore implements the adapter.PreferenceStore interface. Values are
// stored as "1"/"0"; an absent key reads as enabled.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed preference store instance.
func NewRedisStore(client *redis.Client) adapter.PreferenceStore {
	return &redisStore{
		client: client,
	}
}

// GetBool returns the stored value for key, or true if the key is absent.
func (s *redisStore) GetBool(ctx context.Context, userID uuid.UUID, key string) (bool, error) {
	value, err := s.client.Get(ctx, preferenceKey(userID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return value == "1", nil
}

// SetBool stores the value for key.
func (s *redisStore) SetBool(ctx context.Context, userID uuid.UUID, key string, value bool) error {
	stored := "0"
	if value {
		stored = "1"
	}
	if err := s.client.Set(ctx, preferenceKey(userID, key), stored, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

// preferenceKey builds the Redis key for a user's preference.
func preferenceKey(userID uuid.UUID, key string) string {
	return keyPrefix + userID.String() + ":" + key
}
