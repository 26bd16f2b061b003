package api

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"boldstore-be/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_Update(t *testing.T) {
	a := newTestAPI(t)
	token := a.login()

	t.Run("Valid", func(t *testing.T) {
		w, env := a.do(http.MethodPut, "/api/profile", token, map[string]string{
			"fullName": "  Asha Rao ",
			"email":    "asha@example.com",
			"phone":    "9876543210",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, profile.MsgProfileUpdated, env.Message)

		_, env = a.do(http.MethodGet, "/api/profile", token, nil)
		v := decode[profile.View](t, env.Data)
		assert.Equal(t, "Asha Rao", v.Profile.FullName)
		assert.Equal(t, "9876543210", v.Profile.Phone)
		assert.Empty(t, v.Avatar)
	})

	t.Run("Invalid", func(t *testing.T) {
		w, env := a.do(http.MethodPut, "/api/profile", token, map[string]string{
			"fullName": "A",
			"email":    "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Details, "fullName")
		assert.Contains(t, env.Error.Details, "email")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		w, env := a.do(http.MethodPut, "/api/profile", token, "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", env.Error.Code)
	})
}

func TestProfileHandler_Avatar(t *testing.T) {
	a := newTestAPI(t)
	token := a.login()

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG fake"))

	w, _ := a.do(http.MethodPut, "/api/profile/avatar", token, map[string]string{"avatar": uri})
	require.Equal(t, http.StatusOK, w.Code)

	_, env := a.do(http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, uri, decode[profile.View](t, env.Data).Avatar)

	w, env = a.do(http.MethodPut, "/api/profile/avatar", token, map[string]string{"avatar": "data:text/plain;base64,aGk="})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_AVATAR", env.Error.Code)

	big := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", profile.MaxAvatarBytes+1)))
	w, env = a.do(http.MethodPut, "/api/profile/avatar", token, map[string]string{"avatar": big})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, profile.MsgAvatarTooLarge, env.Message)

	w, _ = a.do(http.MethodDelete, "/api/profile/avatar", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = a.do(http.MethodGet, "/api/profile", token, nil)
	assert.Empty(t, decode[profile.View](t, env.Data).Avatar)
}
