package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedis(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedis(client)
	ctx := context.Background()

	t.Run("GetFound", func(t *testing.T) {
		mock.ExpectGet("boldstore:cart").SetVal("[]")

		v, ok, err := store.Get(ctx, "cart")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", v)
	})

	t.Run("GetMissing", func(t *testing.T) {
		mock.ExpectGet("boldstore:cart").RedisNil()

		_, ok, err := store.Get(ctx, "cart")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("GetError", func(t *testing.T) {
		mock.ExpectGet("boldstore:cart").SetErr(errors.New("conn reset"))

		_, _, err := store.Get(ctx, "cart")
		assert.Error(t, err)
	})

	t.Run("Set", func(t *testing.T) {
		mock.ExpectSet("boldstore:cart", "[]", 0).SetVal("OK")

		assert.NoError(t, store.Set(ctx, "cart", "[]"))
	})

	t.Run("Remove", func(t *testing.T) {
		mock.ExpectDel("boldstore:cart").SetVal(1)

		assert.NoError(t, store.Remove(ctx, "cart"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
