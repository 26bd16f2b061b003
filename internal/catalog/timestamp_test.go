package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := map[string]string{
		"EpochMillis": `1705276800000`,
		"RFC3339":     `"2024-01-15T00:00:00Z"`,
		"JSDate":      `"2024-01-15T00:00:00.000Z"`,
		"LocalTime":   `"2024-01-15T00:00:00"`,
		"DateOnly":    `"2024-01-15"`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(raw), &ts))
			assert.True(t, want.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	t.Run("Garbage", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	})
}

func TestTimestamp_Marshal(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC))

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-30T12:00:00Z"`, string(out))
}

func TestProduct_JSONRoundTrip(t *testing.T) {
	raw := `{"id":"p1","name":"Uno","description":"d","price":599,"image":"i","categoryId":"cat1","rating":4.8,"stock":0,"inStock":true,"salePrice":0,"brand":"Arduino","dateAdded":1705276800000,"specs":{"pins":14,"voltage":"5V"}}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "cat1", p.CategoryID)
	assert.True(t, p.Available())
	assert.True(t, p.OnSale(), "a zero sale price still marks the product as on sale")
	assert.Equal(t, "Arduino", *p.Brand)
	assert.Equal(t, int64(1705276800000), p.AddedAt())
	assert.Equal(t, "pins", p.Specs[0].Name)

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var again Product
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, p.AddedAt(), again.AddedAt())
	assert.Equal(t, p.Specs, again.Specs)
}

func TestProduct_OptionalFields(t *testing.T) {
	p := Product{ID: "x", Stock: 0}

	assert.False(t, p.Available())
	assert.False(t, p.OnSale())
	assert.Equal(t, int64(0), p.AddedAt())

	p.InStock = BoolPtr(false)
	assert.False(t, p.Available())

	p.Stock = 3
	assert.True(t, p.Available(), "inStock=false does not hide stocked products")
}
