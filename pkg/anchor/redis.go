package anchor

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists anchor ids in Redis.
// Use this backend when several collaborators edit the same document from
// different processes: the pinned anchor is shared by everyone immediately.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store.
// The prefix namespaces keys so unrelated deployments can share an instance;
// an empty prefix defaults to "slidekit:anchor:".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "slidekit:anchor:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Get returns the pinned anchor id for the document.
func (s *RedisStore) Get(ctx context.Context, docID string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+docID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set pins an anchor id, replacing any previous pin.
// Anchor pins never expire; they live until explicitly cleared.
func (s *RedisStore) Set(ctx context.Context, docID, objectID string) error {
	return s.client.Set(ctx, s.prefix+docID, objectID, 0).Err()
}

// Clear removes the pinned anchor.
func (s *RedisStore) Clear(ctx context.Context, docID string) error {
	return s.client.Del(ctx, s.prefix+docID).Err()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
