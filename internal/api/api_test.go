package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boldstore-be/internal/account"
	"boldstore-be/internal/cart"
	"boldstore-be/internal/catalog"
	"boldstore-be/internal/checkout"
	"boldstore-be/internal/events"
	"boldstore-be/internal/profile"
	"boldstore-be/internal/search"
	"boldstore-be/internal/storage"
	"boldstore-be/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	kv     *storage.Memory
}

func newServices(kv storage.Store) Services {
	catalogSvc := catalog.NewService(catalog.NewSeededRepository())
	cartSvc := cart.NewService(kv, catalogSvc)

	return Services{
		Accounts: account.NewService(kv, cartSvc),
		Catalog:  catalogSvc,
		Carts:    cartSvc,
		Search:   search.NewService(kv, catalogSvc),
		Profiles: profile.NewService(kv),
		Wishlist: wishlist.NewService(kv, catalogSvc),
		Checkout: checkout.NewService(kv, cartSvc, events.LogPublisher{}),
	}
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "testsecret")

	kv := storage.NewMemory()
	router := NewRouter(newServices(kv), Options{CORSOrigin: "http://localhost:3000", DisableRateLimit: true})
	return &testAPI{t: t, router: router, kv: kv}
}

func (a *testAPI) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

// session starts an anonymous session and returns its token.
func (a *testAPI) session() string {
	a.t.Helper()

	w, env := a.do(http.MethodPost, "/api/session", "", nil)
	require.Equal(a.t, http.StatusCreated, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(a.t, data.Token)
	return data.Token
}

// login starts a session and logs it in.
func (a *testAPI) login() string {
	a.t.Helper()

	token := a.session()
	w, _ := a.do(http.MethodPost, "/api/auth/login", token, map[string]string{"email": "maker@example.com", "password": "pw"})
	require.Equal(a.t, http.StatusOK, w.Code)
	return token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
