package search

import (
	"context"
	"testing"

	"boldstore-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Add(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	h := LoadHistory(ctx, kv)

	for _, term := range []string{"led", "esp32", "  sensor ", "", "led"} {
		h.Add(ctx, term)
	}
	assert.Equal(t, []string{"sensor", "esp32", "led"}, h.Terms())

	// persisted newest first
	raw, ok, err := kv.Get(ctx, HistoryKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["sensor","esp32","led"]`, raw)
}

func TestHistory_Cap(t *testing.T) {
	ctx := context.Background()
	h := LoadHistory(ctx, storage.NewMemory())

	for _, term := range []string{"a", "b", "c", "d", "e", "f"} {
		h.Add(ctx, term)
	}
	assert.Equal(t, []string{"f", "e", "d", "c", "b"}, h.Terms())
}

func TestHistory_RepeatKeepsPosition(t *testing.T) {
	ctx := context.Background()
	h := LoadHistory(ctx, storage.NewMemory())
	h.Add(ctx, "arduino")
	h.Add(ctx, "led")
	h.Add(ctx, "arduino")

	assert.Equal(t, []string{"led", "arduino"}, h.Terms())
}

func TestLoadHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Corrupt", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(ctx, HistoryKey, "oops"))
		assert.Empty(t, LoadHistory(ctx, kv).Terms())
	})

	t.Run("Sanitizes", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(ctx, HistoryKey, `["a","","a","b","c","d","e","f"]`))
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, LoadHistory(ctx, kv).Terms())
	})

	t.Run("Clear", func(t *testing.T) {
		kv := storage.NewMemory()
		h := LoadHistory(ctx, kv)
		h.Add(ctx, "x")
		require.NoError(t, h.Clear(ctx))

		_, ok, _ := kv.Get(ctx, HistoryKey)
		assert.False(t, ok)
		assert.Empty(t, LoadHistory(ctx, kv).Terms())
	})
}
