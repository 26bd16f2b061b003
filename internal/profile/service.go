package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"
	"boldstore-be/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context, sessionID string) (View, error)
	Update(ctx context.Context, sessionID string, p Profile) (Profile, error)
	SetAvatar(ctx context.Context, sessionID, dataURI string) error
	RemoveAvatar(ctx context.Context, sessionID string) error
}

type service struct {
	kv       storage.Store
	validate *validator.Validate
	mu       sync.Mutex
}

func NewService(kv storage.Store) Service {
	return &service{kv: kv, validate: validation.New()}
}

// Get returns the stored profile and avatar. A corrupt profile record reads
// as an empty profile.
func (s *service) Get(ctx context.Context, sessionID string) (View, error) {
	if sessionID == "" {
		return View{}, ErrMissingSession
	}

	kv := storage.Scope(s.kv, sessionID)

	var v View
	if _, err := storage.GetJSON(ctx, kv, ProfileKey, &v.Profile); err != nil {
		logger.FromCtx(ctx).Warn("discarding unreadable profile",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		v.Profile = Profile{}
	}

	avatar, _, err := kv.Get(ctx, AvatarKey)
	if err != nil {
		return View{}, err
	}
	v.Avatar = avatar

	return v, nil
}

func (s *service) Update(ctx context.Context, sessionID string, p Profile) (Profile, error) {
	if sessionID == "" {
		return Profile{}, ErrMissingSession
	}

	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)

	if err := s.validate.Struct(p); err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.SetJSON(ctx, storage.Scope(s.kv, sessionID), ProfileKey, p); err != nil {
		logger.FromCtx(ctx).Error("failed to store profile", zap.String("layer", "service"), zap.Error(err))
		return Profile{}, err
	}
	return p, nil
}

func (s *service) SetAvatar(ctx context.Context, sessionID, dataURI string) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	if err := checkAvatar(dataURI); err != nil {
		logger.FromCtx(ctx).Info("avatar rejected",
			zap.String("layer", "service"),
			zap.Int("size", len(dataURI)),
			zap.Error(err),
		)
		return err
	}

	return storage.Scope(s.kv, sessionID).Set(ctx, AvatarKey, dataURI)
}

func (s *service) RemoveAvatar(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	return storage.Scope(s.kv, sessionID).Remove(ctx, AvatarKey)
}
