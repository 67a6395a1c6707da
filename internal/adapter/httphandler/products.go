package httphandler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/zarshop/storefront/internal/core/domain"
)

// GET v1/products?category=&style=&search=&budget=&occasion= (200 OK)
// GET v1/products/trending (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/categories (200 OK)

type catalogService interface {
	Browse(ctx context.Context, c domain.FilterCriteria) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Trending(ctx context.Context, n int) ([]domain.Product, error)
	RecordView(ctx context.Context, v domain.ProductView)
	ViewCount(productID int64) int64
}

type CatalogHandler struct {
	catalog catalogService
}

func RegisterCatalog(
	mux *http.ServeMux, catalog catalogService, auth authenticator,
) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/trending", h.GetTrending)
	mux.Handle("GET /v1/products/{id}",
		OptionalAuth(auth, http.HandlerFunc(h.GetProduct)))
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	criteria, err := parseCriteria(r)
	if err != nil {
		http.Error(w, "invalid budget", http.StatusBadRequest)
		log.Warn("failed to parse criteria", "err", err)
		return
	}

	ps, err := h.catalog.Browse(r.Context(), criteria)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		log.Warn("failed to parse product id", "err", err)
		return
	}

	p, err := h.catalog.Product(r.Context(), id)
	if err != nil {
		writeErr(w, op, err)
		return
	}

	var userID int64
	if session, ok := SessionFromContext(r.Context()); ok {
		userID = session.UserID
	}
	h.catalog.RecordView(r.Context(), domain.ProductView{
		ProductID: id,
		UserID:    userID,
		At:        time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, ProductDetail{
		Product: toProduct(p),
		Views:   h.catalog.ViewCount(id),
	})
}

const trendingLimit = 6

func (h CatalogHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetTrending"

	ps, err := h.catalog.Trending(r.Context(), trendingLimit)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"

	cs, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeErr(w, op, err)
		return
	}
	if cs == nil {
		cs = []string{}
	}
	writeJSON(w, http.StatusOK, cs)
}

func parseCriteria(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()
	c := domain.FilterCriteria{
		Category: q.Get("category"),
		Style:    q.Get("style"),
		Search:   q.Get("search"),
		Occasion: q.Get("occasion"),
	}

	if s := q.Get("budget"); s != "" {
		budget, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		c.Budget = &budget
	}
	return c, nil
}
