// internal/adapters/redis_adapter/lock.go
package redis_a

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aileenong/kprimefood/internal/core/ports"
)

// lockRetryInterval paces acquisition attempts while another sale of
// the same item is in flight.
const lockRetryInterval = 50 * time.Millisecond

// releaseScript deletes the lock only when the caller still owns it, so
// a lock that expired and was re-acquired by someone else survives.
var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	end
	return 0
`)

// ItemLock serializes sale commits per item with a Redis SETNX lock.
type ItemLock struct {
	client *redis.Client
	logger *slog.Logger
}

// Statically assert that *ItemLock implements the ItemLocker interface.
var _ ports.ItemLocker = (*ItemLock)(nil)

// NewItemLock creates a new item lock
func NewItemLock(client *redis.Client, logger *slog.Logger) *ItemLock {
	return &ItemLock{
		client: client,
		logger: logger.With(slog.String("component", "item_lock")),
	}
}

// AcquireItemLock blocks until the item's lock is held or the context
// is done. The returned release function is safe to call once the
// caller's transaction has committed or rolled back.
func (l *ItemLock) AcquireItemLock(ctx context.Context, itemID int64, ttl time.Duration) (func(), error) {
	key := BuildKey(PrefixLock, "item", strconv.FormatInt(itemID, 10))
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis setnx error: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for item lock: %w", ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}

	l.logger.DebugContext(ctx, "item lock acquired",
		slog.Int64("item_id", itemID),
		slog.String("key", key))

	release := func() {
		// Release runs on the way out of a sale; a fresh context keeps
		// it working when the request context is already cancelled.
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(rctx, l.client, []string{key}, token).Err(); err != nil && err != redis.Nil {
			l.logger.Warn("failed to release item lock",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}
	return release, nil
}
