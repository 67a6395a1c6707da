package httphandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zarshop/storefront/internal/core/domain"
)

// GET v1/cart (200 OK, 401 Unauthorized)
// POST v1/cart/items JSON {"product_id", "size", "color"} (200 OK)
// PUT v1/cart/items JSON {"product_id", "size", "color", "quantity"} (200 OK)
// DELETE v1/cart/items JSON {"product_id", "size", "color"} (200 OK)
// DELETE v1/cart (200 OK)

type cartService interface {
	Cart(ctx context.Context, userID int64) (domain.Cart, error)
	AddItem(ctx context.Context, userID, productID int64, size, color string) (domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64, size, color string) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID int64, size, color string, quantity int) (domain.Cart, error)
	Clear(ctx context.Context, userID int64) (domain.Cart, error)
}

type CartHandler struct {
	cart cartService
}

func RegisterCart(mux *http.ServeMux, cart cartService, auth authenticator) {
	h := CartHandler{cart}
	withAuth := func(hf http.HandlerFunc) http.Handler {
		return RequireAuth(auth, hf)
	}
	mux.Handle("GET /v1/cart", withAuth(h.GetCart))
	mux.Handle("POST /v1/cart/items", withAuth(h.PostItem))
	mux.Handle("PUT /v1/cart/items", withAuth(h.PutItem))
	mux.Handle("DELETE /v1/cart/items", withAuth(h.DeleteItem))
	mux.Handle("DELETE /v1/cart", withAuth(h.DeleteCart))
}

type cartItemReq struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func decodeItemReq(w http.ResponseWriter, r *http.Request, op string) (cartItemReq, bool) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		slog.Warn("failed to parse JSON", "op", op, "err", err)
		return cartItemReq{}, false
	}
	return req, true
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"

	session, _ := SessionFromContext(r.Context())
	cart, err := h.cart.Cart(r.Context(), session.UserID)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"

	req, ok := decodeItemReq(w, r, op)
	if !ok {
		return
	}

	session, _ := SessionFromContext(r.Context())
	cart, err := h.cart.AddItem(
		r.Context(), session.UserID, req.ProductID, req.Size, req.Color,
	)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"

	req, ok := decodeItemReq(w, r, op)
	if !ok {
		return
	}

	session, _ := SessionFromContext(r.Context())
	cart, err := h.cart.UpdateQuantity(
		r.Context(), session.UserID,
		req.ProductID, req.Size, req.Color, req.Quantity,
	)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"

	req, ok := decodeItemReq(w, r, op)
	if !ok {
		return
	}

	session, _ := SessionFromContext(r.Context())
	cart, err := h.cart.RemoveItem(
		r.Context(), session.UserID, req.ProductID, req.Size, req.Color,
	)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"

	session, _ := SessionFromContext(r.Context())
	cart, err := h.cart.Clear(r.Context(), session.UserID)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}
