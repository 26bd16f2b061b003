package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("X-Request-ID", "req-1")

		Success(c, http.StatusOK, "ok", gin.H{"n": 1})

		var body APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "ok", body.Message)
		assert.Equal(t, "req-1", body.RequestID)
		assert.Nil(t, body.Error)
		assert.NotEmpty(t, body.Timestamp)
	})

	t.Run("Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Error(c, http.StatusNotFound, "NOT_FOUND", "gone", map[string]string{"id": "p9"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "gone", body.Message)
	})
}
