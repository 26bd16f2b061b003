package account

import (
	"context"
	"errors"
	"testing"

	"boldstore-be/internal/cart"
	"boldstore-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartClearer struct {
	mock.Mock
}

func (m *MockCartClearer) Clear(ctx context.Context, sessionID string) (cart.Summary, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(cart.Summary), args.Error(1)
}

func newTestService() (Service, *storage.Memory, *MockCartClearer) {
	kv := storage.NewMemory()
	carts := new(MockCartClearer)
	return NewService(kv, carts), kv, carts
}

func TestService_StartSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	svc, _, _ := newTestService()

	token, sessionID, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	claims, err := ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, kv, _ := newTestService()
		require.NoError(t, svc.Register(ctx, " Maker@Example.com ", "hunter2"))

		var acc Account
		ok, err := storage.GetJSON(ctx, kv, "account:maker@example.com", &acc)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, CheckPasswordHash("hunter2", acc.PasswordHash))
	})

	t.Run("Duplicate", func(t *testing.T) {
		svc, _, _ := newTestService()
		require.NoError(t, svc.Register(ctx, "a@b.co", "pw"))
		assert.ErrorIs(t, svc.Register(ctx, "A@B.co", "other"), ErrEmailExists)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _, _ := newTestService()
		assert.ErrorIs(t, svc.Register(ctx, "", "pw"), ErrMissingCredentials)
		assert.ErrorIs(t, svc.Register(ctx, "a@b.co", ""), ErrMissingCredentials)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		svc, _, _ := newTestService()
		assert.ErrorIs(t, svc.Register(ctx, "not-an-email", "pw"), ErrInvalidEmail)
	})

	t.Run("DoesNotLogIn", func(t *testing.T) {
		svc, kv, _ := newTestService()
		require.NoError(t, svc.Register(ctx, "a@b.co", "pw"))
		assert.Equal(t, 1, kv.Len())
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("UnregisteredEmailAccepted", func(t *testing.T) {
		svc, _, _ := newTestService()
		require.NoError(t, svc.Login(ctx, "s1", "guest@example.com", "anything"))

		ok, err := svc.IsAuthenticated(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("RegisteredPasswordChecked", func(t *testing.T) {
		svc, _, _ := newTestService()
		require.NoError(t, svc.Register(ctx, "a@b.co", "right"))

		assert.ErrorIs(t, svc.Login(ctx, "s1", "a@b.co", "wrong"), ErrInvalidCredentials)
		ok, _ := svc.IsAuthenticated(ctx, "s1")
		assert.False(t, ok)

		require.NoError(t, svc.Login(ctx, "s1", "A@B.CO", "right"))
		ok, _ = svc.IsAuthenticated(ctx, "s1")
		assert.True(t, ok)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _, _ := newTestService()
		assert.ErrorIs(t, svc.Login(ctx, "s1", "", "pw"), ErrMissingCredentials)
		assert.ErrorIs(t, svc.Login(ctx, "s1", "a@b.co", ""), ErrMissingCredentials)
		assert.ErrorIs(t, svc.Login(ctx, "", "a@b.co", "pw"), ErrMissingSession)
	})

	t.Run("FlagIsPerSession", func(t *testing.T) {
		svc, _, _ := newTestService()
		require.NoError(t, svc.Login(ctx, "s1", "a@b.co", "pw"))
		ok, _ := svc.IsAuthenticated(ctx, "s2")
		assert.False(t, ok)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("ClearsFlagAndCart", func(t *testing.T) {
		svc, _, carts := newTestService()
		carts.On("Clear", ctx, "s1").Return(cart.Summary{}, nil)

		require.NoError(t, svc.Login(ctx, "s1", "a@b.co", "pw"))
		require.NoError(t, svc.Logout(ctx, "s1"))

		ok, _ := svc.IsAuthenticated(ctx, "s1")
		assert.False(t, ok)
		carts.AssertExpectations(t)
	})

	t.Run("CartError", func(t *testing.T) {
		svc, _, carts := newTestService()
		carts.On("Clear", ctx, "s1").Return(cart.Summary{}, errors.New("boom"))
		assert.EqualError(t, svc.Logout(ctx, "s1"), "boom")
	})
}

func TestService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	assert.NoError(t, svc.ForgotPassword(ctx, "a@b.co"))
	assert.ErrorIs(t, svc.ForgotPassword(ctx, "  "), ErrMissingEmail)
	assert.ErrorIs(t, svc.ForgotPassword(ctx, "nope"), ErrInvalidEmail)
}

func TestService_Landing(t *testing.T) {
	ctx := context.Background()
	svc, kv, _ := newTestService()

	// first visit
	route, err := svc.Landing(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, RouteOnboarding, route)
	v, ok, _ := kv.Get(ctx, "session:s1:hasSeenSplash")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	// seen, not logged in
	route, _ = svc.Landing(ctx, "s1")
	assert.Equal(t, RouteOnboarding, route)

	// seen, logged in
	require.NoError(t, svc.Login(ctx, "s1", "a@b.co", "pw"))
	route, _ = svc.Landing(ctx, "s1")
	assert.Equal(t, RouteHome, route)

	// a logged-in session that never saw the splash still onboards first
	require.NoError(t, svc.Login(ctx, "s2", "a@b.co", "pw"))
	route, _ = svc.Landing(ctx, "s2")
	assert.Equal(t, RouteOnboarding, route)
}

func TestService_OnboardingSlides(t *testing.T) {
	svc, _, _ := newTestService()
	slides := svc.OnboardingSlides()
	require.Len(t, slides, 3)
	assert.Equal(t, "Welcome to Bold Electronics", slides[0].Title)
	assert.Equal(t, "Fast & Secure Checkout", slides[2].Title)
}
