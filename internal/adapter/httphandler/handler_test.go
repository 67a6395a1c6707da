package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarshop/storefront/internal/core/domain"
)

type stubCatalog struct {
	products []domain.Product
	views    map[int64]int64
}

func (s stubCatalog) Browse(
	_ context.Context, c domain.FilterCriteria,
) ([]domain.Product, error) {
	return domain.FilterCatalog(s.products, c), nil
}

func (s stubCatalog) Product(
	_ context.Context, id int64,
) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (s stubCatalog) Categories(context.Context) ([]string, error) {
	return domain.Categories(s.products), nil
}

func (s stubCatalog) Trending(context.Context, int) ([]domain.Product, error) {
	return nil, nil
}

func (s stubCatalog) RecordView(context.Context, domain.ProductView) {}

func (s stubCatalog) ViewCount(productID int64) int64 {
	return s.views[productID]
}

type stubAuth struct {
	session domain.Session
}

func (s stubAuth) Authenticate(
	_ context.Context, token string,
) (domain.Session, error) {
	if token != s.session.Token {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return s.session, nil
}

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()

	catalog := stubCatalog{
		products: []domain.Product{
			{ID: 1, Name: "Classic White Button-Up Shirt", Category: "tops",
				Style: "Professional", Price: 49.99},
			{ID: 2, Name: "Silk Wrap Midi Dress", Category: "dresses",
				Style: "Elegant", Price: 189.994},
		},
		views: map[int64]int64{2: 5},
	}
	auth := stubAuth{session: domain.Session{
		Token: "good-token", UserID: 7, Email: "amira@example.com",
	}}

	mux := http.NewServeMux()
	RegisterCatalog(mux, catalog, auth)
	RegisterHealth(mux, []HealthCheck{
		{Name: "database", Check: func(context.Context) error { return nil }},
		{Name: "broker", Check: func(context.Context) error {
			return errors.New("broker unavailable")
		}},
	})
	return mux
}

func TestGetProducts(t *testing.T) {
	t.Run("NoCriteriaReturnsAll", func(t *testing.T) {
		mux := testMux(t)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(
			http.MethodGet, "/v1/products", nil,
		))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("BudgetFilters", func(t *testing.T) {
		mux := testMux(t)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(
			http.MethodGet, "/v1/products?budget=60", nil,
		))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("InvalidBudgetIsBadRequest", func(t *testing.T) {
		mux := testMux(t)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(
			http.MethodGet, "/v1/products?budget=cheap", nil,
		))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PriceRoundedToCents", func(t *testing.T) {
		mux := testMux(t)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(
			http.MethodGet, "/v1/products/2", nil,
		))

		require.Equal(t, http.StatusOK, rec.Code)
		var got Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 189.99, got.Price)
	})

	t.Run("DetailCarriesViewCount", func(t *testing.T) {
		mux := testMux(t)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(
			http.MethodGet, "/v1/products/2", nil,
		))

		require.Equal(t, http.StatusOK, rec.Code)
		var got ProductDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(5), got.Views)
	})

	t.Run("UnknownProductIsNotFound", func(t *testing.T) {
		mux := testMux(t)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(
			http.MethodGet, "/v1/products/404", nil,
		))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	auth := stubAuth{session: domain.Session{Token: "good-token", UserID: 7}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(7), session.UserID)
		w.WriteHeader(http.StatusOK)
	})
	h := RequireAuth(auth, next)

	t.Run("NoToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cart", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GoodToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAllowJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := AllowJSON(next)

	t.Run("RejectsNonJSONBody", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/v1/orders", strings.NewReader("payload"),
		)
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("AllowsEmptyBody", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	mux := testMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"status":"degraded","components":{"database":"ok","broker":"unavailable"}}`,
		rec.Body.String())
}
