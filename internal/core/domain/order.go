package domain

import "time"

// Order status progresses pending -> shipped -> delivered. Transitions
// are driven by an external fulfilment system, the storefront stores
// the value verbatim.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// An OrderItem is an immutable snapshot of a cart line taken at
// checkout. It carries its own display fields and never references
// live catalog data.
type OrderItem struct {
	ProductID int64
	Size      string
	Color     string
	Name      string
	Price     float64
	Quantity  int
}

type ShippingInfo struct {
	FullName   string
	Address    string
	City       string
	PostalCode string
	Country    string
}

type Order struct {
	ID            string
	UserID        int64
	Items         []OrderItem
	Total         float64
	Status        OrderStatus
	Shipping      ShippingInfo
	PaymentMethod string
	CreatedAt     time.Time
}

// NewOrder snapshots the cart into an order. The total is computed
// from the cart lines, not supplied by the caller.
func NewOrder(
	id string, userID int64, cart Cart,
	shipping ShippingInfo, paymentMethod string, createdAt time.Time,
) Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, li := range cart.Items {
		items = append(items, OrderItem{
			ProductID: li.ProductID,
			Size:      li.Size,
			Color:     li.Color,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
		})
	}
	return Order{
		ID:            id,
		UserID:        userID,
		Items:         items,
		Total:         cart.TotalPrice(),
		Status:        OrderStatusPending,
		Shipping:      shipping,
		PaymentMethod: paymentMethod,
		CreatedAt:     createdAt,
	}
}
