// Package idempotency remembers which order an Idempotency-Key produced.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	defaultTTL        = 24 * time.Hour
	defaultPendingTTL = time.Minute
	keyPrefix  = "order-idem"
	inProgress = "pending"
)

// Client is the subset of *redis.Client the store talks to.
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisStore struct {
	client     Client
	ttl        time.Duration
	pendingTTL time.Duration
}

// NewRedisStore keeps completed keys for ttl. An in-flight claim lives only
// for pendingTTL so a request that dies before Complete or Release frees the
// key on its own.
func NewRedisStore(client Client, ttl, pendingTTL time.Duration) *redisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if pendingTTL <= 0 {
		pendingTTL = defaultPendingTTL
	}
	pendingTTL = min(pendingTTL, ttl)
	return &redisStore{client: client, ttl: ttl, pendingTTL: pendingTTL}
}

// Reserve claims the key with SETNX. A lost claim reports the order number
// stored under the key, or an empty one while the first request still runs.
func (s *redisStore) Reserve(ctx context.Context, userID, key string) (string, bool, error) {
	k := redisKey(userID, key)

	ok, err := s.client.SetNX(ctx, k, inProgress, s.pendingTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	if ok {
		return "", true, nil
	}

	val, err := s.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// Released between the two calls; the caller may retry the request.
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if val == inProgress {
		return "", false, nil
	}
	return val, false, nil
}

func (s *redisStore) Complete(ctx context.Context, userID, key, orderNo string) error {
	if err := s.client.Set(ctx, redisKey(userID, key), orderNo, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

func (s *redisStore) Release(ctx context.Context, userID, key string) error {
	if err := s.client.Del(ctx, redisKey(userID, key)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

func redisKey(userID, key string) string {
	return keyPrefix + ":" + userID + ":" + key
}
