package search

import (
	"context"
	"testing"

	"boldstore-be/internal/catalog"
	"boldstore-be/internal/filter"
	"boldstore-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wide() filter.Spec {
	s := filter.Default()
	s.MaxPrice = 100000
	return s
}

func newTestService() Service {
	return NewService(storage.NewMemory(), catalog.NewService(catalog.NewSeededRepository()))
}

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("MatchesAndRecords", func(t *testing.T) {
		svc := newTestService()
		res, err := svc.Search(ctx, "s1", "  esp ", wide())
		require.NoError(t, err)
		assert.Contains(t, ids(res), "p3")
		assert.Contains(t, ids(res), "p10")

		recent, err := svc.Recent(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, []string{"esp"}, recent)
	})

	t.Run("AppliesFilter", func(t *testing.T) {
		svc := newTestService()
		spec := wide()
		spec.SortBy = filter.SortPriceHigh

		res, err := svc.Search(ctx, "s1", "board", spec)
		require.NoError(t, err)
		require.NotEmpty(t, res)
		for i := 1; i < len(res); i++ {
			assert.GreaterOrEqual(t, res[i-1].Price, res[i].Price)
		}

		spec.MaxPrice = 10
		res, err = svc.Search(ctx, "s1", "board", spec)
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("BlankQuery", func(t *testing.T) {
		svc := newTestService()
		res, err := svc.Search(ctx, "s1", "   ", wide())
		require.NoError(t, err)
		assert.Empty(t, res)

		recent, _ := svc.Recent(ctx, "s1")
		assert.Empty(t, recent)
	})

	t.Run("MissingSession", func(t *testing.T) {
		_, err := newTestService().Search(ctx, "", "led", wide())
		assert.ErrorIs(t, err, ErrMissingSession)
	})
}

func TestService_ClearRecent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, _ = svc.Search(ctx, "s1", "led", wide())
	_, _ = svc.Search(ctx, "s2", "dht", wide())
	require.NoError(t, svc.ClearRecent(ctx, "s1"))

	r1, _ := svc.Recent(ctx, "s1")
	r2, _ := svc.Recent(ctx, "s2")
	assert.Empty(t, r1)
	assert.Equal(t, []string{"dht"}, r2)
}

func TestService_Trending(t *testing.T) {
	svc := newTestService()
	got := svc.Trending()
	assert.Equal(t, []string{"Arduino", "Raspberry Pi", "Sensors", "LED", "ESP32", "NodeMCU"}, got)

	got[0] = "changed"
	assert.Equal(t, "Arduino", svc.Trending()[0])
}
