package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
	"github.com/zarshop/storefront/pkg/retry"
)

// OrderService turns the current cart into an immutable order
// snapshot. Placement clears the cart and publishes an order-placed
// event; the event is best-effort and never fails the checkout.
type OrderService struct {
	orders port.OrderRepository
	carts  port.CartRepository
	events port.OrderEventsProducer
}

func NewOrder(
	orders port.OrderRepository,
	carts port.CartRepository,
	events port.OrderEventsProducer,
) OrderService {
	return OrderService{orders, carts, events}
}

func (s OrderService) Place(
	ctx context.Context, userID int64,
	shipping domain.ShippingInfo, paymentMethod string,
) (domain.Order, error) {
	const op = "OrderService.Place"
	log := slog.With("op", op, "userID", userID)

	cart, err := s.carts.Cart(ctx, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if cart.Empty() {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	order := domain.NewOrder(
		uuid.NewString(), userID, cart,
		shipping, paymentMethod, time.Now().UTC(),
	)

	if err := s.orders.StoreOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		log.Error("failed to clear cart after order", "err", err)
	}

	s.produceOrderPlaced(ctx, order, log)

	return order, nil
}

func (s OrderService) Orders(
	ctx context.Context, userID int64,
) ([]domain.Order, error) {
	const op = "OrderService.Orders"

	os, err := s.orders.Orders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return os, nil
}

func (s OrderService) Order(
	ctx context.Context, userID int64, orderID string,
) (domain.Order, error) {
	const op = "OrderService.Order"

	o, err := s.orders.Order(ctx, userID, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

func (s OrderService) produceOrderPlaced(
	ctx context.Context, order domain.Order, log *slog.Logger,
) {
	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(100 * time.Millisecond),
	}

	err := retry.Do(ctx, retryCfg, func() error {
		return s.events.ProduceOrderPlaced(ctx, order)
	})
	if err != nil {
		log.Error("failed to produce order-placed event",
			"orderID", order.ID, "err", err)
	}
}
