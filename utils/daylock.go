// File: utils/daylock.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Every state-mutating calendar operation runs as one read-check-write unit
// under a lock scoped to a single professional's single day. Availability
// reads never take it.

const (
	dayLockLease    = 5 * time.Second
	dayLockAttempts = 3
	dayLockBackoff  = 50 * time.Millisecond
)

// ErrDayLocked is returned when another writer holds the professional's day.
var ErrDayLocked = fmt.Errorf("calendar day is locked by another operation")

// releaseScript deletes the lock only if the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// DayLocker serializes mutations of one professional's calendar day.
type DayLocker interface {
	Acquire(ctx context.Context, professionalID, date string) (release func(), err error)
}

// RedisDayLocker implements DayLocker with a SetNX lease.
type RedisDayLocker struct {
	Client *redis.Client
}

func NewRedisDayLocker(client *redis.Client) *RedisDayLocker {
	return &RedisDayLocker{Client: client}
}

func (l *RedisDayLocker) Acquire(ctx context.Context, professionalID, date string) (func(), error) {
	key := fmt.Sprintf("lock:day:%s:%s", professionalID, date)
	token := uuid.New().String()

	for attempt := 1; attempt <= dayLockAttempts; attempt++ {
		ok, err := l.Client.SetNX(ctx, key, token, dayLockLease).Result()
		if err != nil {
			return nil, fmt.Errorf("day lock acquire failed: %w", err)
		}
		if ok {
			release := func() {
				if _, err := releaseScript.Run(context.Background(), l.Client, []string{key}, token).Result(); err != nil {
					GetLogger().Warn("day lock release failed",
						zap.String("key", key), zap.Error(err))
				}
			}
			return release, nil
		}
		if attempt < dayLockAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(dayLockBackoff):
			}
		}
	}
	return nil, ErrDayLocked
}

// NoopDayLocker satisfies DayLocker without coordination. Single-writer
// deployments and tests use it.
type NoopDayLocker struct{}

func (NoopDayLocker) Acquire(context.Context, string, string) (func(), error) {
	return func() {}, nil
}
