package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"boldstore-be/internal/cart"
	"boldstore-be/internal/events"
	"boldstore-be/internal/logger"
	"boldstore-be/internal/storage"
	"boldstore-be/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	State(ctx context.Context, sessionID string) (View, error)
	SubmitAddress(ctx context.Context, sessionID string, addr Address) (View, error)
	SubmitPayment(ctx context.Context, sessionID string, pay Payment) (View, error)
	Back(ctx context.Context, sessionID string) (View, error)
	Complete(ctx context.Context, sessionID string) (*Order, error)
}

type service struct {
	kv        storage.Store
	carts     cart.Service
	publisher events.Publisher
	validate  *validator.Validate
	now       func() time.Time
	mu        sync.Mutex
}

func NewService(kv storage.Store, carts cart.Service, publisher events.Publisher) Service {
	s := &service{
		kv:        kv,
		carts:     carts,
		publisher: publisher,
		validate:  validation.New(),
		now:       time.Now,
	}

	err := s.validate.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return validExpiry(fl.Field().String(), s.now())
	})
	if err != nil {
		panic(fmt.Sprintf("checkout: register expiry validation: %v", err))
	}

	return s
}

// validExpiry accepts MM/YY for the current month or later.
func validExpiry(s string, now time.Time) bool {
	t, err := time.Parse("01/06", strings.TrimSpace(s))
	if err != nil {
		return false
	}
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return !t.Before(current)
}

func (s *service) load(ctx context.Context, kv storage.Store) state {
	st := state{Step: StepAddress}
	if _, err := storage.GetJSON(ctx, kv, StorageKey, &st); err != nil {
		logger.FromCtx(ctx).Warn("discarding unreadable checkout state",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return state{Step: StepAddress}
	}

	switch st.Step {
	case StepAddress, StepPayment, StepConfirmation:
	default:
		st = state{Step: StepAddress}
	}
	return st
}

func (s *service) save(ctx context.Context, kv storage.Store, st state) error {
	if err := storage.SetJSON(ctx, kv, StorageKey, st); err != nil {
		logger.FromCtx(ctx).Error("failed to store checkout state",
			zap.String("layer", "service"),
			zap.String("step", string(st.Step)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) view(ctx context.Context, sessionID string, st state) (View, error) {
	summary, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	return View{Step: st.Step, Address: st.Address, Order: st.Order, Cart: summary}, nil
}

func (s *service) State(ctx context.Context, sessionID string) (View, error) {
	if sessionID == "" {
		return View{}, ErrMissingSession
	}

	s.mu.Lock()
	st := s.load(ctx, storage.Scope(s.kv, sessionID))
	s.mu.Unlock()

	return s.view(ctx, sessionID, st)
}

func (s *service) SubmitAddress(ctx context.Context, sessionID string, addr Address) (View, error) {
	if sessionID == "" {
		return View{}, ErrMissingSession
	}

	addr = trimAddress(addr)
	if err := s.validate.Struct(addr); err != nil {
		return View{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kv := storage.Scope(s.kv, sessionID)
	st := s.load(ctx, kv)
	if st.Step != StepAddress {
		return View{}, ErrInvalidStep
	}

	st.Address = &addr
	st.Step = StepPayment
	if err := s.save(ctx, kv, st); err != nil {
		return View{}, err
	}

	return s.view(ctx, sessionID, st)
}

// SubmitPayment simulates a successful charge for the current cart and
// moves to confirmation. The order.placed event is best effort.
func (s *service) SubmitPayment(ctx context.Context, sessionID string, pay Payment) (View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitPayment"),
	)

	if sessionID == "" {
		return View{}, ErrMissingSession
	}

	pay.CardName = strings.TrimSpace(pay.CardName)
	pay.CardNumber = strings.Join(strings.Fields(pay.CardNumber), "")
	pay.Expiry = strings.TrimSpace(pay.Expiry)
	pay.CVV = strings.TrimSpace(pay.CVV)
	if err := s.validate.Struct(pay); err != nil {
		return View{}, fmt.Errorf("%w: %w", ErrInvalidPayment, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kv := storage.Scope(s.kv, sessionID)
	st := s.load(ctx, kv)
	if st.Step != StepPayment || st.Address == nil {
		return View{}, ErrInvalidStep
	}

	summary, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	if summary.Count == 0 {
		return View{}, cart.ErrCartEmpty
	}

	order := newOrder(summary, *st.Address, pay, s.now())

	st.Order = order
	st.Step = StepConfirmation
	if err := s.save(ctx, kv, st); err != nil {
		return View{}, err
	}

	err = s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeOrderPlaced,
		Key:        order.ID,
		Payload:    order,
		OccurredAt: order.PlacedAt,
	})
	if err != nil {
		log.Error("failed to publish order event", zap.String("order_id", order.ID), zap.Error(err))
	}

	log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("total", order.Total.StringFixed(2)),
		zap.Int("items", summary.Count),
	)

	return View{Step: st.Step, Address: st.Address, Order: st.Order, Cart: summary}, nil
}

// Back steps one screen backwards. At the address step it does nothing.
func (s *service) Back(ctx context.Context, sessionID string) (View, error) {
	if sessionID == "" {
		return View{}, ErrMissingSession
	}

	s.mu.Lock()
	kv := storage.Scope(s.kv, sessionID)
	st := s.load(ctx, kv)

	switch st.Step {
	case StepPayment:
		st.Step = StepAddress
	case StepConfirmation:
		st.Step = StepPayment
	}

	err := s.save(ctx, kv, st)
	s.mu.Unlock()
	if err != nil {
		return View{}, err
	}

	return s.view(ctx, sessionID, st)
}

// Complete finishes a confirmed checkout: the cart is emptied and the flow
// starts over at the address step.
func (s *service) Complete(ctx context.Context, sessionID string) (*Order, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kv := storage.Scope(s.kv, sessionID)
	st := s.load(ctx, kv)
	if st.Step != StepConfirmation || st.Order == nil {
		return nil, ErrInvalidStep
	}

	if _, err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := kv.Remove(ctx, StorageKey); err != nil {
		return nil, err
	}

	return st.Order, nil
}

func newOrder(summary cart.Summary, addr Address, pay Payment, now time.Time) *Order {
	id := uuid.New()
	return &Order{
		ID:                id.String(),
		Number:            fmt.Sprintf("BD%08d", id.ID()%100000000),
		Items:             summary.Items,
		Subtotal:          summary.Subtotal,
		Shipping:          summary.Shipping,
		Total:             summary.Total,
		ShipTo:            addr,
		CardLast4:         pay.CardNumber[len(pay.CardNumber)-4:],
		EstimatedDelivery: EstimatedDelivery,
		PlacedAt:          now.UTC(),
	}
}

func trimAddress(a Address) Address {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.Pincode = strings.TrimSpace(a.Pincode)
	a.State = strings.TrimSpace(a.State)
	a.Phone = strings.TrimSpace(a.Phone)
	return a
}
