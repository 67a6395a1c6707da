package httphandler

import (
	"math"
	"time"

	"github.com/zarshop/storefront/internal/core/domain"
)

type (
	Product struct {
		ID          int64    `json:"id"`
		Name        string   `json:"name"`
		Category    string   `json:"category"`
		Style       string   `json:"style"`
		Price       float64  `json:"price"`
		Description string   `json:"description"`
		Sizes       []string `json:"sizes"`
		Colors      []string `json:"colors"`
		Image       string   `json:"image"`
	}

	// ProductDetail augments the list shape with the view counter
	// maintained by the views pipeline.
	ProductDetail struct {
		Product
		Views int64 `json:"views"`
	}

	CartItem struct {
		ProductID int64   `json:"product_id"`
		Size      string  `json:"size"`
		Color     string  `json:"color"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Image     string  `json:"image"`
		Quantity  int     `json:"quantity"`
	}

	Cart struct {
		Items         []CartItem `json:"items"`
		Total         float64    `json:"total"`
		TotalQuantity int        `json:"total_quantity"`
	}

	OrderItem struct {
		ProductID int64   `json:"product_id"`
		Size      string  `json:"size"`
		Color     string  `json:"color"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	}

	Shipping struct {
		FullName   string `json:"full_name"`
		Address    string `json:"address"`
		City       string `json:"city"`
		PostalCode string `json:"postal_code"`
		Country    string `json:"country"`
	}

	Order struct {
		ID            string      `json:"id"`
		Items         []OrderItem `json:"items"`
		Total         float64     `json:"total"`
		Status        string      `json:"status"`
		Shipping      Shipping    `json:"shipping"`
		PaymentMethod string      `json:"payment_method"`
		CreatedAt     string      `json:"created_at"`
	}

	User struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	AuthResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	ChatMessage struct {
		Role string `json:"role"`
		Text string `json:"text"`
	}

	ChatReply struct {
		Message     string   `json:"message"`
		Suggestions []string `json:"suggestions"`
	}

	StyleAdvice struct {
		BodyType        string    `json:"body_type"`
		Tips            []string  `json:"tips"`
		Recommendations []Product `json:"recommendations"`
	}
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Style:       p.Style,
		Price:       round2(p.Price),
		Description: p.Description,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Image:       p.Image,
	}
}

func toProducts(ps []domain.Product) []Product {
	vs := make([]Product, 0, len(ps))
	for _, p := range ps {
		vs = append(vs, toProduct(p))
	}
	return vs
}

func toCart(c domain.Cart) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, li := range c.Items {
		items = append(items, CartItem{
			ProductID: li.ProductID,
			Size:      li.Size,
			Color:     li.Color,
			Name:      li.Name,
			Price:     round2(li.Price),
			Image:     li.Image,
			Quantity:  li.Quantity,
		})
	}
	return Cart{
		Items:         items,
		Total:         round2(c.TotalPrice()),
		TotalQuantity: c.TotalQuantity(),
	}
}

func toOrder(o domain.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Size:      it.Size,
			Color:     it.Color,
			Name:      it.Name,
			Price:     round2(it.Price),
			Quantity:  it.Quantity,
		})
	}
	return Order{
		ID:     o.ID,
		Items:  items,
		Total:  round2(o.Total),
		Status: string(o.Status),
		Shipping: Shipping{
			FullName:   o.Shipping.FullName,
			Address:    o.Shipping.Address,
			City:       o.Shipping.City,
			PostalCode: o.Shipping.PostalCode,
			Country:    o.Shipping.Country,
		},
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toOrders(os []domain.Order) []Order {
	vs := make([]Order, 0, len(os))
	for _, o := range os {
		vs = append(vs, toOrder(o))
	}
	return vs
}

func toUser(u domain.User) User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name}
}

func toChatHistory(ms []ChatMessage) []domain.ChatMessage {
	vs := make([]domain.ChatMessage, 0, len(ms))
	for _, m := range ms {
		vs = append(vs, domain.ChatMessage{
			Role: domain.ChatRole(m.Role),
			Text: m.Text,
		})
	}
	return vs
}
