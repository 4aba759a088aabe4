package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/aileenong/kprimefood/internal/adapters/redis_adapter"
	"github.com/aileenong/kprimefood/test/helpers"
)

func TestItemLock_AcquireAndRelease(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	lock := redis_a.NewItemLock(client, helpers.TestLogger())

	release, err := lock.AcquireItemLock(ctx, 100, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, release)

	assert.True(t, mr.Exists("lock:item:100"))

	release()
	assert.False(t, mr.Exists("lock:item:100"))
}

func TestItemLock_BlocksConcurrentHolder(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	lock := redis_a.NewItemLock(client, helpers.TestLogger())

	release, err := lock.AcquireItemLock(ctx, 100, time.Minute)
	require.NoError(t, err)
	defer release()

	// A second acquisition of the same item must wait until the first
	// holder releases or its context runs out.
	shortCtx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()

	_, err = lock.AcquireItemLock(shortCtx, 100, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// A different item is unaffected.
	otherRelease, err := lock.AcquireItemLock(ctx, 200, time.Minute)
	require.NoError(t, err)
	otherRelease()
}

func TestItemLock_ReleaseIsOwnershipChecked(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	lock := redis_a.NewItemLock(client, helpers.TestLogger())

	release, err := lock.AcquireItemLock(ctx, 100, time.Minute)
	require.NoError(t, err)

	// Simulate TTL expiry followed by another holder taking the lock.
	mr.Del("lock:item:100")
	secondRelease, err := lock.AcquireItemLock(ctx, 100, time.Minute)
	require.NoError(t, err)

	// The stale release must not remove the new holder's lock.
	release()
	assert.True(t, mr.Exists("lock:item:100"))

	secondRelease()
	assert.False(t, mr.Exists("lock:item:100"))
}
