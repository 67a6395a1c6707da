package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

var (
	_ port.CatalogRepository = (*ProductsRepository)(nil)
	_ port.ProductsSaver     = (*ProductsRepository)(nil)
)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

func (r ProductsRepository) SaveProducts(
	ctx context.Context, vs []domain.Product,
) (saveErr error) {
	const op = "ProductsRepository.SaveProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if saveErr == nil {
			if err := tx.Commit(); err != nil {
				saveErr = fmt.Errorf("%s: failed to commit %w", op, err)
			}
			return
		}

		err := tx.Rollback()
		if err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	query := `
		INSERT INTO products (
			id, name, category, style, price,
			description, sizes, colors, image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			style = EXCLUDED.style,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			sizes = EXCLUDED.sizes,
			colors = EXCLUDED.colors,
			image = EXCLUDED.image;
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, v := range vs {
		_, err := stmt.ExecContext(ctx,
			v.ID, v.Name, v.Category, v.Style, v.Price,
			v.Description, joinList(v.Sizes), joinList(v.Colors), v.Image,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}
	}

	return nil
}

func (r ProductsRepository) Products(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, name, category, style, price,
			description, sizes, colors, image
		FROM products ORDER BY id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var vs []domain.Product
	for rows.Next() {
		v, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

func (r ProductsRepository) Product(
	ctx context.Context, productID int64,
) (domain.Product, error) {
	const op = "ProductsRepository.Product"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, name, category, style, price,
			description, sizes, colors, image
		FROM products WHERE id = $1;`

	row := r.sqldb.QueryRowContext(ctx, query, productID)
	v, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func scanProduct(scan func(...any) error) (domain.Product, error) {
	var v domain.Product
	var sizesS, colorsS string
	err := scan(
		&v.ID, &v.Name, &v.Category, &v.Style, &v.Price,
		&v.Description, &sizesS, &colorsS, &v.Image,
	)
	if err != nil {
		return domain.Product{}, err
	}
	v.Sizes = splitList(sizesS)
	v.Colors = splitList(colorsS)
	return v, nil
}

func joinList(vs []string) string {
	return strings.Join(vs, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
