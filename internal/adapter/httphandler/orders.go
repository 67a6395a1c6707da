package httphandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zarshop/storefront/internal/core/domain"
)

// POST v1/orders JSON {"shipping", "payment_method"} (201 Created, 400 Bad request)
// GET v1/orders (200 OK)
// GET v1/orders/{id} (200 OK, 404 Not found)

type orderService interface {
	Place(ctx context.Context, userID int64, shipping domain.ShippingInfo, paymentMethod string) (domain.Order, error)
	Orders(ctx context.Context, userID int64) ([]domain.Order, error)
	Order(ctx context.Context, userID int64, orderID string) (domain.Order, error)
}

type OrdersHandler struct {
	orders orderService
}

func RegisterOrders(mux *http.ServeMux, orders orderService, auth authenticator) {
	h := OrdersHandler{orders}
	withAuth := func(hf http.HandlerFunc) http.Handler {
		return RequireAuth(auth, hf)
	}
	mux.Handle("POST /v1/orders", withAuth(h.PostOrder))
	mux.Handle("GET /v1/orders", withAuth(h.GetOrders))
	mux.Handle("GET /v1/orders/{id}", withAuth(h.GetOrder))
}

func (h OrdersHandler) PostOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PostOrder"
	log := slog.With("op", op)

	var req struct {
		Shipping      Shipping `json:"shipping"`
		PaymentMethod string   `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	session, _ := SessionFromContext(r.Context())
	order, err := h.orders.Place(
		r.Context(), session.UserID,
		domain.ShippingInfo{
			FullName:   req.Shipping.FullName,
			Address:    req.Shipping.Address,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
			Country:    req.Shipping.Country,
		},
		req.PaymentMethod,
	)
	if err != nil {
		writeErr(w, op, err)
		return
	}

	log.Info("order placed", "orderID", order.ID, "userID", session.UserID)
	writeJSON(w, http.StatusCreated, toOrder(order))
}

func (h OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrders"

	session, _ := SessionFromContext(r.Context())
	orders, err := h.orders.Orders(r.Context(), session.UserID)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrders(orders))
}

func (h OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrder"

	session, _ := SessionFromContext(r.Context())
	order, err := h.orders.Order(r.Context(), session.UserID, r.PathValue("id"))
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrder(order))
}
