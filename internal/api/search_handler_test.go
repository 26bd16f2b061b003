package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler(t *testing.T) {
	a := newTestAPI(t)
	token := a.login()

	w, env := a.do(http.MethodGet, "/api/search?q=sensor&inStock=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode[struct {
		Query   string      `json:"query"`
		Results productList `json:"results"`
	}](t, env.Data)
	assert.Equal(t, "sensor", data.Query)
	assert.NotZero(t, data.Results.Count)

	a.do(http.MethodGet, "/api/search?q=esp32", token, nil)

	_, env = a.do(http.MethodGet, "/api/search/recent", token, nil)
	recent := decode[struct {
		Recent   []string `json:"recent"`
		Trending []string `json:"trending"`
	}](t, env.Data)
	assert.Equal(t, []string{"esp32", "sensor"}, recent.Recent)
	assert.Len(t, recent.Trending, 6)

	w, _ = a.do(http.MethodDelete, "/api/search/recent", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = a.do(http.MethodGet, "/api/search/recent", token, nil)
	assert.JSONEq(t, `{"recent":[],"trending":["Arduino","Raspberry Pi","Sensors","LED","ESP32","NodeMCU"]}`, string(env.Data))
}
