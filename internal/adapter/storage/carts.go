package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

var _ port.CartRepository = (*CartsRepository)(nil)

// CartsRepository keeps one cart snapshot per user as a JSONB document.
type CartsRepository struct {
	sqldb sqldb
}

func NewCartsRepository(sqldb sqldb) CartsRepository {
	return CartsRepository{sqldb}
}

func (r CartsRepository) Cart(
	ctx context.Context, userID int64,
) (domain.Cart, error) {
	const op = "CartsRepository.Cart"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT items FROM carts WHERE user_id = $1;`

	var itemsS string
	err := r.sqldb.QueryRowContext(ctx, query, userID).Scan(&itemsS)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(itemsS), &items); err != nil {
		log.Warn("corrupt cart snapshot, serving empty cart",
			"userID", userID, "err", err)
		return domain.Cart{}, nil
	}
	return domain.Cart{Items: items}, nil
}

func (r CartsRepository) SaveCart(
	ctx context.Context, userID int64, cart domain.Cart,
) error {
	const op = "CartsRepository.SaveCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	itemsB, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET
			items = EXCLUDED.items,
			updated_at = now();`

	_, err = r.sqldb.ExecContext(ctx, query, userID, string(itemsB))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartsRepository) DeleteCart(ctx context.Context, userID int64) error {
	const op = "CartsRepository.DeleteCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `DELETE FROM carts WHERE user_id = $1;`
	_, err := r.sqldb.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
