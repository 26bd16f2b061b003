package cart

import (
	"context"
	"sync"

	"boldstore-be/internal/catalog"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	Get(ctx context.Context, sessionID string) (Summary, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (Summary, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Summary, error)
	Increment(ctx context.Context, sessionID, productID string) (Summary, error)
	Decrement(ctx context.Context, sessionID, productID string) (Summary, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (Summary, error)
	Clear(ctx context.Context, sessionID string) (Summary, error)
}

type service struct {
	kv      storage.Store
	catalog catalog.Service

	// serializes load-mutate-save so concurrent requests of one session
	// cannot lose each other's writes
	mu sync.Mutex
}

// NewService creates a new cart service
func NewService(kv storage.Store, catalogSvc catalog.Service) Service {
	return &service{kv: kv, catalog: catalogSvc}
}

func (s *service) load(ctx context.Context, sessionID string) (*Store, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	return Load(ctx, storage.Scope(s.kv, sessionID)), nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return c.Summary(), nil
}

// AddItem resolves productID against the catalog and adds it to the cart.
func (s *service) AddItem(ctx context.Context, sessionID, productID string, quantity int) (Summary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("product_id", productID),
	)

	if productID == "" {
		return Summary{}, ErrMissingProduct
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		log.Warn("product lookup failed", zap.Error(err))
		return Summary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	c.AddToCart(ctx, *p, quantity)
	log.Info("added to cart", zap.Int("quantity", c.Quantity(productID)))

	return c.Summary(), nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Summary, error) {
	return s.mutate(ctx, sessionID, func(c *Store) {
		c.UpdateQuantity(ctx, productID, quantity)
	})
}

func (s *service) Increment(ctx context.Context, sessionID, productID string) (Summary, error) {
	return s.mutate(ctx, sessionID, func(c *Store) {
		if q := c.Quantity(productID); q > 0 {
			c.UpdateQuantity(ctx, productID, q+1)
		}
	})
}

// Decrement lowers the quantity by one; at one the line is removed.
func (s *service) Decrement(ctx context.Context, sessionID, productID string) (Summary, error) {
	return s.mutate(ctx, sessionID, func(c *Store) {
		if q := c.Quantity(productID); q > 0 {
			c.UpdateQuantity(ctx, productID, q-1)
		}
	})
}

func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) (Summary, error) {
	return s.mutate(ctx, sessionID, func(c *Store) {
		c.RemoveFromCart(ctx, productID)
	})
}

func (s *service) Clear(ctx context.Context, sessionID string) (Summary, error) {
	return s.mutate(ctx, sessionID, func(c *Store) {
		c.ClearCart(ctx)
	})
}

func (s *service) mutate(ctx context.Context, sessionID string, fn func(*Store)) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	fn(c)
	return c.Summary(), nil
}
