package service

import (
	"context"
	"fmt"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

// CartService applies the cart ledger operations to the persisted
// per-user snapshot: load, transform with pure cart functions, store.
type CartService struct {
	carts   port.CartRepository
	catalog port.CatalogBrowser
}

func NewCart(carts port.CartRepository, catalog port.CatalogBrowser) CartService {
	return CartService{carts, catalog}
}

func (s CartService) Cart(
	ctx context.Context, userID int64,
) (domain.Cart, error) {
	const op = "CartService.Cart"

	cart, err := s.carts.Cart(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) AddItem(
	ctx context.Context, userID, productID int64, size, color string,
) (domain.Cart, error) {
	const op = "CartService.AddItem"

	p, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.apply(ctx, op, userID, func(c domain.Cart) domain.Cart {
		return c.Add(p, size, color)
	})
}

func (s CartService) RemoveItem(
	ctx context.Context, userID, productID int64, size, color string,
) (domain.Cart, error) {
	const op = "CartService.RemoveItem"

	return s.apply(ctx, op, userID, func(c domain.Cart) domain.Cart {
		return c.Remove(productID, size, color)
	})
}

func (s CartService) UpdateQuantity(
	ctx context.Context, userID, productID int64,
	size, color string, quantity int,
) (domain.Cart, error) {
	const op = "CartService.UpdateQuantity"

	return s.apply(ctx, op, userID, func(c domain.Cart) domain.Cart {
		return c.SetQuantity(productID, size, color, quantity)
	})
}

func (s CartService) Clear(
	ctx context.Context, userID int64,
) (domain.Cart, error) {
	const op = "CartService.Clear"

	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.Cart{}, nil
}

func (s CartService) apply(
	ctx context.Context, op string, userID int64,
	fn func(domain.Cart) domain.Cart,
) (domain.Cart, error) {
	cart, err := s.carts.Cart(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	next := fn(cart)
	if err := s.carts.SaveCart(ctx, userID, next); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return next, nil
}
