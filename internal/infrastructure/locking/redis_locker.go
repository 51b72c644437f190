package locking

import (
	"context"
	"errors"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"
)

const lockPrefix = "lock:"

// RedisLocker serializes registry writers across processes.
type RedisLocker struct {
	client  *redislock.Client
	backoff time.Duration
	retries int
}

var _ interfaces.IKeyLocker = (*RedisLocker)(nil)

func NewRedisLocker(client *redislock.Client) *RedisLocker {
	return &RedisLocker{client: client, backoff: 50 * time.Millisecond, retries: 100}
}

func (l *RedisLocker) Lock(ctx context.Context, keys []string, ttl time.Duration) (func(), error) {
	held := make([]*redislock.Lock, 0, len(keys))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := held[i].Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
				logging.GetLogger().WithFields(logrus.Fields{"key": held[i].Key()}).Warn("[locking][redis] release failed: " + err.Error())
			}
		}
	}

	opts := &redislock.Options{RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.backoff), l.retries)}
	for _, k := range keys {
		lock, err := l.client.Obtain(ctx, lockPrefix+k, ttl, opts)
		if errors.Is(err, redislock.ErrNotObtained) {
			release()
			return nil, entities.Conflictf("%s is being updated by another request", k)
		}
		if err != nil {
			release()
			return nil, err
		}
		held = append(held, lock)
	}
	return release, nil
}
