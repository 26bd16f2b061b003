package wishlist

import (
	"context"
	"errors"
	"sync"

	"boldstore-be/internal/catalog"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"

	"go.uber.org/zap"
)

const StorageKey = "wishlist"

var ErrMissingSession = errors.New("session id is required")

const MsgEmpty = "Add products to your wishlist to keep track of items you're interested in"

type Service interface {
	// Toggle adds productID when absent and removes it when present. It
	// reports whether the product is wishlisted afterwards.
	Toggle(ctx context.Context, sessionID, productID string) (bool, error)
	List(ctx context.Context, sessionID string) ([]catalog.Product, error)
}

type service struct {
	kv      storage.Store
	catalog catalog.Service
	mu      sync.Mutex
}

func NewService(kv storage.Store, catalogSvc catalog.Service) Service {
	return &service{kv: kv, catalog: catalogSvc}
}

func (s *service) load(ctx context.Context, kv storage.Store) []string {
	var ids []string
	if _, err := storage.GetJSON(ctx, kv, StorageKey, &ids); err != nil {
		logger.FromCtx(ctx).Warn("discarding unreadable wishlist",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil
	}
	return ids
}

func (s *service) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	if sessionID == "" {
		return false, ErrMissingSession
	}
	if _, err := s.catalog.GetProduct(ctx, productID); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kv := storage.Scope(s.kv, sessionID)
	ids := s.load(ctx, kv)

	added := true
	out := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == productID {
			added = false
			continue
		}
		out = append(out, id)
	}
	if added {
		out = append(out, productID)
	}

	if err := storage.SetJSON(ctx, kv, StorageKey, out); err != nil {
		return false, err
	}

	logger.FromCtx(ctx).Info("wishlist toggled",
		zap.String("layer", "service"),
		zap.String("product_id", productID),
		zap.Bool("added", added),
	)
	return added, nil
}

// List resolves the stored ids in the order they were added. Ids that are
// no longer in the catalog are skipped.
func (s *service) List(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	s.mu.Lock()
	ids := s.load(ctx, storage.Scope(s.kv, sessionID))
	s.mu.Unlock()

	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.catalog.GetProduct(ctx, id)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}
