package cart

import (
	"context"

	"boldstore-be/internal/catalog"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store is one session's cart. Line items keep the order they were first
// added in and there is at most one per product id. Count and Subtotal are
// derived from the items on every call.
//
// Every mutation is written back to the key-value store. A failed write is
// logged and otherwise ignored: the in-memory cart stays authoritative for
// the rest of the request.
type Store struct {
	kv    storage.Store
	items []LineItem
}

// Load restores the cart from kv. A missing, unreadable or corrupt record
// yields an empty cart.
func Load(ctx context.Context, kv storage.Store) *Store {
	s := &Store{kv: kv}

	var items []LineItem
	ok, err := storage.GetJSON(ctx, kv, StorageKey, &items)
	if err != nil {
		logger.FromCtx(ctx).Warn("discarding unreadable cart",
			zap.String("layer", "cart"),
			zap.Error(err),
		)
		return s
	}
	if !ok {
		return s
	}

	for _, it := range items {
		if it.Product.ID == "" || it.Quantity < 1 {
			continue
		}
		if i := s.indexOf(it.Product.ID); i >= 0 {
			s.items[i].Quantity += it.Quantity
			continue
		}
		s.items = append(s.items, it)
	}

	return s
}

// AddToCart adds quantity units of p, merging into an existing line. A
// quantity below one is a no-op. Stock is not checked.
func (s *Store) AddToCart(ctx context.Context, p catalog.Product, quantity int) {
	if quantity < 1 {
		return
	}

	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, LineItem{Product: p, Quantity: quantity})
	}

	s.persist(ctx)
}

// UpdateQuantity sets the quantity of an existing line. Zero or less removes
// the line; an unknown product id is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, productID)
		return
	}

	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	s.items[i].Quantity = quantity
	s.persist(ctx)
}

func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist(ctx)
}

func (s *Store) ClearCart(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the line items.
func (s *Store) Items() []LineItem {
	return append([]LineItem{}, s.items...)
}

// Quantity is the quantity held for productID, 0 when absent.
func (s *Store) Quantity(productID string) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

func (s *Store) Count() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func (s *Store) Summary() Summary {
	subtotal := s.Subtotal()
	return Summary{
		Items:    s.Items(),
		Count:    s.Count(),
		Subtotal: subtotal,
		Shipping: Shipping(subtotal),
		Total:    Total(subtotal),
	}
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []LineItem{}
	}

	if err := storage.SetJSON(ctx, s.kv, StorageKey, items); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist cart",
			zap.String("layer", "cart"),
			zap.Int("items", len(items)),
			zap.Error(err),
		)
	}
}
