package domain

// A LineItem is one (product, size, color) record within a cart.
// Name, Price and Image are snapshots taken when the line was added,
// later catalog changes never affect an existing cart.
type LineItem struct {
	ProductID int64   `json:"product_id"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

func (li LineItem) sameIdentity(productID int64, size, color string) bool {
	return li.ProductID == productID && li.Size == size && li.Color == color
}

// A Cart holds at most one line item per (product, size, color)
// identity, every line with quantity >= 1. All operations are
// value-semantic: they return a new cart and never mutate the receiver.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges the product into the cart: an existing line for
// (product.ID, size, color) gets its quantity incremented by one,
// otherwise a new line with quantity 1 is appended.
func (c Cart) Add(p Product, size, color string) Cart {
	items := c.copyItems()
	for i := range items {
		if items[i].sameIdentity(p.ID, size, color) {
			items[i].Quantity++
			return Cart{items}
		}
	}
	items = append(items, LineItem{
		ProductID: p.ID,
		Size:      size,
		Color:     color,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	return Cart{items}
}

// Remove deletes the matching line item. Removing an absent identity
// is a no-op.
func (c Cart) Remove(productID int64, size, color string) Cart {
	items := make([]LineItem, 0, len(c.Items))
	for _, li := range c.Items {
		if li.sameIdentity(productID, size, color) {
			continue
		}
		items = append(items, li)
	}
	return Cart{items}
}

// SetQuantity sets the line quantity to an absolute value. A quantity
// of zero or less removes the line; an absent identity is a no-op.
func (c Cart) SetQuantity(productID int64, size, color string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID, size, color)
	}
	items := c.copyItems()
	for i := range items {
		if items[i].sameIdentity(productID, size, color) {
			items[i].Quantity = quantity
			break
		}
	}
	return Cart{items}
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// TotalPrice is the sum of unit price times quantity over all lines.
func (c Cart) TotalPrice() float64 {
	var total float64
	for _, li := range c.Items {
		total += li.Price * float64(li.Quantity)
	}
	return total
}

// TotalQuantity is the sum of quantities over all lines.
func (c Cart) TotalQuantity() int {
	var total int
	for _, li := range c.Items {
		total += li.Quantity
	}
	return total
}

func (c Cart) copyItems() []LineItem {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return items
}
