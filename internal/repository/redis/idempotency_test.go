package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	key := KeyIdemPurchase(42, "abc-123")

	t.Run("acquire lock on a fresh key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewIdempotencyStore(rdb, time.Hour)

		mock.ExpectSetNX(key, "LOCK", time.Minute).SetVal(true)

		locked, err := store.AcquireLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, locked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second acquire loses", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewIdempotencyStore(rdb, time.Hour)

		mock.ExpectSetNX(key, "LOCK", time.Minute).SetVal(false)

		locked, err := store.AcquireLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, locked)
	})

	t.Run("save then replay a result", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewIdempotencyStore(rdb, time.Hour)
		payload := `{"status":"success","data":{"purchase_id":"p-1"}}`

		mock.ExpectSet(key, "RES:"+payload, time.Hour).SetVal("OK")
		mock.ExpectGet(key).SetVal("RES:" + payload)

		require.NoError(t, store.SaveResult(ctx, key, payload))

		got, ok, err := store.GetResult(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, payload, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a held lock is not a result", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewIdempotencyStore(rdb, time.Hour)

		mock.ExpectGet(key).SetVal("LOCK")

		_, ok, err := store.GetResult(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)

		mock.ExpectGet(key).SetVal("LOCK")
		locked, err := store.IsLocked(ctx, key)
		require.NoError(t, err)
		assert.True(t, locked)
	})

	t.Run("missing key yields no result", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewIdempotencyStore(rdb, time.Hour)

		mock.ExpectGet(key).RedisNil()

		_, ok, err := store.GetResult(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("release drops the key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewIdempotencyStore(rdb, time.Hour)

		mock.ExpectDel(key).SetVal(1)

		require.NoError(t, store.Release(ctx, key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKeysAreNamespacedPerUser(t *testing.T) {
	assert.NotEqual(t, KeyIdemPurchase(1, "k"), KeyIdemPurchase(2, "k"))
	assert.NotEqual(t, KeyIdemPurchase(1, "k"), KeyIdemRegistration(1, "k"))
	assert.NotEqual(t, KeyEventSummary(10), KeyEventTickets(10))
}
