package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLockManager_Serializes(t *testing.T) {
	m := NewUserLockManager(time.Second, nil)

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !assert.NoError(t, m.Lock(context.Background(), 1)) {
				return
			}
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
			m.Unlock(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestUserLockManager_Timeout(t *testing.T) {
	m := NewUserLockManager(20*time.Millisecond, nil)
	require.NoError(t, m.Lock(context.Background(), 1))
	defer m.Unlock(1)

	err := m.Lock(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeLockTimeout))

	assert.NoError(t, m.Lock(context.Background(), 2), "other users are not blocked")
	m.Unlock(2)
}

func TestUserLockManager_ContextCancelled(t *testing.T) {
	m := NewUserLockManager(time.Second, nil)
	require.NoError(t, m.Lock(context.Background(), 1))
	defer m.Unlock(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, m.Lock(ctx, 1))
}

func TestUserLockManager_Relock(t *testing.T) {
	m := NewUserLockManager(20*time.Millisecond, nil)

	require.NoError(t, m.Lock(context.Background(), 3))
	assert.Error(t, m.Lock(context.Background(), 3))
	m.Unlock(3)
	require.NoError(t, m.Lock(context.Background(), 3))
	m.Unlock(3)

	m.Unlock(99)
}

func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping redis test")
	}
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisUserLocker(t *testing.T) {
	client := redisClient(t)
	userID := time.Now().UnixNano()

	first := NewRedisUserLocker(client, 5*time.Second, 50*time.Millisecond, nil)
	second := NewRedisUserLocker(client, 5*time.Second, 50*time.Millisecond, nil)

	require.NoError(t, first.Lock(context.Background(), userID))

	err := second.Lock(context.Background(), userID)
	assert.True(t, domain.HasCode(err, domain.ErrCodeLockTimeout))

	second.Unlock(userID)
	exists, err := client.Exists(context.Background(), redisKey(userID)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists, "a non-owner must not release the lock")

	first.Unlock(userID)
	require.NoError(t, second.Lock(context.Background(), userID))
	second.Unlock(userID)
}
