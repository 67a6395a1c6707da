package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

var _ port.OrderRepository = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) StoreOrder(
	ctx context.Context, order domain.Order,
) (storeErr error) {
	const op = "OrdersRepository.StoreOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit %w", op, err)
			}
			return
		}

		err := tx.Rollback()
		if err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	orderQuery := `
		INSERT INTO orders (
			id, user_id, total, status,
			ship_full_name, ship_address, ship_city,
			ship_postal_code, ship_country,
			payment_method, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err = tx.ExecContext(ctx, orderQuery,
		order.ID, order.UserID, order.Total, string(order.Status),
		order.Shipping.FullName, order.Shipping.Address, order.Shipping.City,
		order.Shipping.PostalCode, order.Shipping.Country,
		order.PaymentMethod, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to insert order: %w", op, err)
	}

	itemQuery := `
		INSERT INTO order_items (
			order_id, product_id, size, color, name, price, quantity
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	stmt, err := tx.PrepareContext(ctx, itemQuery)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, it := range order.Items {
		_, err := stmt.ExecContext(ctx,
			order.ID, it.ProductID, it.Size, it.Color,
			it.Name, it.Price, it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to insert item: %w", op, err)
		}
	}

	return nil
}

func (r OrdersRepository) Orders(
	ctx context.Context, userID int64,
) ([]domain.Order, error) {
	const op = "OrdersRepository.Orders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, user_id, total, status,
			ship_full_name, ship_address, ship_city,
			ship_postal_code, ship_country,
			payment_method, created_at
		FROM orders
		WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		v, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r OrdersRepository) Order(
	ctx context.Context, userID int64, orderID string,
) (domain.Order, error) {
	const op = "OrdersRepository.Order"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, user_id, total, status,
			ship_full_name, ship_address, ship_city,
			ship_postal_code, ship_country,
			payment_method, created_at
		FROM orders
		WHERE user_id = $1 AND id = $2;`

	row := r.sqldb.QueryRowContext(ctx, query, userID, orderID)
	v, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	items, err := r.orderItems(ctx, v.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	v.Items = items
	return v, nil
}

func (r OrdersRepository) orderItems(
	ctx context.Context, orderID string,
) ([]domain.OrderItem, error) {
	query := `
		SELECT product_id, size, color, name, price, quantity
		FROM order_items WHERE order_id = $1 ORDER BY id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		err := rows.Scan(
			&it.ProductID, &it.Size, &it.Color,
			&it.Name, &it.Price, &it.Quantity,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanOrder(scan func(...any) error) (domain.Order, error) {
	var v domain.Order
	var status string
	err := scan(
		&v.ID, &v.UserID, &v.Total, &status,
		&v.Shipping.FullName, &v.Shipping.Address, &v.Shipping.City,
		&v.Shipping.PostalCode, &v.Shipping.Country,
		&v.PaymentMethod, &v.CreatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	v.Status = domain.OrderStatus(status)
	return v, nil
}
