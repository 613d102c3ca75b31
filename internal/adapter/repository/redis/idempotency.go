package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const processingMarker = "processing"

// IdempotencyStore caches responses to ingest requests by
// Idempotency-Key so a retried submission is replayed instead of
// re-applied.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "payengine:idem:",
	}
}

// Begin claims the key for the current request. It returns seen=true
// with the cached response when another request already completed
// under this key, and seen=false when the caller now owns the key.
func (s *IdempotencyStore) Begin(ctx context.Context, key string, ttl time.Duration) (seen bool, cached []byte, err error) {
	fullKey := s.prefix + key

	claimed, err := s.client.SetNX(ctx, fullKey, processingMarker, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if claimed {
		return false, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Claim expired between SetNX and Get; treat as unseen.
			return false, nil, nil
		}
		return false, nil, err
	}
	if string(existing) == processingMarker {
		return true, nil, nil
	}
	return true, existing, nil
}

// Complete stores the final response under the key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
