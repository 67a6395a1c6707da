package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

var _ port.CatalogBrowser = (*CatalogService)(nil)

// CatalogService serves catalog reads. When the product store is
// unreachable it substitutes the built-in fallback dataset, so browse
// never fails for infrastructure reasons. The decision lives here, the
// pure filter functions stay oblivious to it.
type CatalogService struct {
	repo          port.CatalogRepository
	views         port.ViewCounts
	viewsProducer port.ProductViewsProducer
	fallback      []domain.Product
}

func NewCatalog(
	repo port.CatalogRepository,
	views port.ViewCounts,
	viewsProducer port.ProductViewsProducer,
	fallback []domain.Product,
) CatalogService {
	return CatalogService{repo, views, viewsProducer, fallback}
}

func (s CatalogService) Browse(
	ctx context.Context, c domain.FilterCriteria,
) ([]domain.Product, error) {
	const op = "CatalogService.Browse"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := s.allProducts(ctx, op)
	return domain.FilterCatalog(ps, c), nil
}

func (s CatalogService) Product(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "CatalogService.Product"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.repo.Product(ctx, id)
	if err == nil {
		return p, nil
	}

	for _, fp := range s.fallback {
		if fp.ID == id {
			return fp, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s CatalogService) Categories(ctx context.Context) ([]string, error) {
	const op = "CatalogService.Categories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Categories(s.allProducts(ctx, op)), nil
}

// Trending resolves the most viewed products from the view counters.
// Products no longer present in the catalog are skipped.
func (s CatalogService) Trending(
	ctx context.Context, n int,
) ([]domain.Product, error) {
	const op = "CatalogService.Trending"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counts, err := s.views.Top(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(counts))
	for _, c := range counts {
		p, err := s.Product(ctx, c.ProductID)
		if err != nil {
			continue
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// ViewCount reports how often the product detail was served. Counter
// errors degrade to zero so the detail page never fails on popularity.
func (s CatalogService) ViewCount(productID int64) int64 {
	const op = "CatalogService.ViewCount"

	n, err := s.views.Count(productID)
	if err != nil {
		slog.Warn("failed to read view counter",
			"op", op, "productID", productID, "err", err)
		return 0
	}
	return n
}

// RecordView publishes a product-view event. Failures are logged and
// swallowed, popularity tracking never affects the browse path.
func (s CatalogService) RecordView(ctx context.Context, v domain.ProductView) {
	const op = "CatalogService.RecordView"

	if err := s.viewsProducer.ProduceView(ctx, v); err != nil {
		slog.Warn("failed to produce view event",
			"op", op, "productID", v.ProductID, "err", err)
	}
}

func (s CatalogService) allProducts(
	ctx context.Context, op string,
) []domain.Product {
	ps, err := s.repo.Products(ctx)
	if err != nil {
		slog.Warn("product store unavailable, serving fallback dataset",
			"op", op, "err", err)
		return s.fallback
	}
	return ps
}
