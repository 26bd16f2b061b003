package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"boldstore-be/internal/cart"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CartClearer empties a session's cart on logout.
type CartClearer interface {
	Clear(ctx context.Context, sessionID string) (cart.Summary, error)
}

type Service interface {
	StartSession(ctx context.Context) (token, sessionID string, err error)
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, sessionID, email, password string) error
	Logout(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, email string) error
	IsAuthenticated(ctx context.Context, sessionID string) (bool, error)
	Landing(ctx context.Context, sessionID string) (Route, error)
	OnboardingSlides() []Slide
}

type service struct {
	kv       storage.Store
	carts    CartClearer
	validate *validator.Validate
	mu       sync.Mutex
}

func NewService(kv storage.Store, carts CartClearer) Service {
	return &service{
		kv:       kv,
		carts:    carts,
		validate: validator.New(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) StartSession(ctx context.Context) (string, string, error) {
	token, sessionID, err := NewSession()
	if err != nil {
		logger.FromCtx(ctx).Error("failed to issue session token",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return "", "", err
	}

	logger.FromCtx(ctx).Info("session started",
		zap.String("layer", "service"),
		zap.String("session_id", sessionID),
	)
	return token, sessionID, nil
}

// Register stores a new account. It does not log the session in.
func (s *service) Register(ctx context.Context, email, password string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing Account
	found, err := storage.GetJSON(ctx, s.kv, accountKeyPrefix+email, &existing)
	if err != nil {
		log.Warn("unreadable account record is overwritten", zap.Error(err))
	}
	if found {
		return ErrEmailExists
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return err
	}

	acc := Account{Email: email, PasswordHash: hashed, CreatedAt: time.Now().UTC()}
	if err := storage.SetJSON(ctx, s.kv, accountKeyPrefix+email, acc); err != nil {
		log.Error("failed to store account", zap.String("email", email), zap.Error(err))
		return err
	}

	log.Info("register service completed", zap.String("email", email))
	return nil
}

// Login marks the session authenticated. Registered emails must present the
// matching password; any other non-empty pair is accepted.
func (s *service) Login(ctx context.Context, sessionID, email, password string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	if sessionID == "" {
		return ErrMissingSession
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	var acc Account
	found, err := storage.GetJSON(ctx, s.kv, accountKeyPrefix+email, &acc)
	if err != nil {
		return err
	}
	if found && !CheckPasswordHash(password, acc.PasswordHash) {
		log.Info("password not match", zap.String("email", email))
		return ErrInvalidCredentials
	}

	if err := storage.Scope(s.kv, sessionID).Set(ctx, AuthKey, "true"); err != nil {
		log.Error("failed to set auth flag", zap.Error(err))
		return err
	}

	log.Info("login service completed", zap.String("email", email), zap.Bool("registered", found))
	return nil
}

// Logout drops the auth flag and empties the cart.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSession
	}

	if err := storage.Scope(s.kv, sessionID).Remove(ctx, AuthKey); err != nil {
		return err
	}
	if _, err := s.carts.Clear(ctx, sessionID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("logout service completed", zap.String("layer", "service"))
	return nil
}

// ForgotPassword only validates the address; no mail is sent.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrMissingEmail
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return ErrInvalidEmail
	}

	logger.FromCtx(ctx).Info("password reset requested",
		zap.String("layer", "service"),
		zap.String("email", email),
	)
	return nil
}

func (s *service) IsAuthenticated(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, ErrMissingSession
	}

	v, ok, err := storage.Scope(s.kv, sessionID).Get(ctx, AuthKey)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

// Landing picks the splash screen's destination. The first visit of a
// session always goes to onboarding and is remembered.
func (s *service) Landing(ctx context.Context, sessionID string) (Route, error) {
	if sessionID == "" {
		return "", ErrMissingSession
	}

	kv := storage.Scope(s.kv, sessionID)
	_, seen, err := kv.Get(ctx, SplashKey)
	if err != nil {
		return "", err
	}

	if !seen {
		if err := kv.Set(ctx, SplashKey, "true"); err != nil {
			return "", err
		}
		return RouteOnboarding, nil
	}

	authed, err := s.IsAuthenticated(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if authed {
		return RouteHome, nil
	}
	return RouteOnboarding, nil
}

func (s *service) OnboardingSlides() []Slide {
	return append([]Slide{}, onboardingSlides...)
}
