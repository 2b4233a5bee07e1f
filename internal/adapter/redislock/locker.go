// Package redislock serialises campaign passes across replicas with Redis
// keys set by SET NX PX and released only by their owner.
package redislock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"spendguard/internal/core/port"
)

// releaseScript deletes the key only while it still holds the caller's
// token, so an expired lock taken over by another pass is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)

const releaseTimeout = 2 * time.Second

// Connect initializes a Redis client from URL or host:port input.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// Locker implements port.CampaignLocker on Redis.
type Locker struct {
	client *redis.Client
	prefix string
}

var _ port.CampaignLocker = (*Locker)(nil)

// New returns a locker storing keys under prefix.
func New(client *redis.Client, prefix string) *Locker {
	return &Locker{client: client, prefix: prefix}
}

// TryLock sets the key if it is free. The lock expires after ttl even when
// release is never called.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	k := l.prefix + key
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, k, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("lock %s: %w", k, err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		// A failed release is harmless: the key expires with its ttl.
		_ = releaseScript.Run(rctx, l.client, []string{k}, token).Err()
	}
	return release, true, nil
}
