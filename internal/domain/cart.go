package domain

// Cart is the session-scoped mapping from product id to requested quantity.
// It is a plain value owned by the caller's session; services receive it
// explicitly rather than reading ambient session state.
type Cart struct {
	lines map[int64]int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[int64]int)}
}

// CartFromSnapshot builds a cart from a product-id to quantity mapping.
// The snapshot is copied; the caller keeps ownership of its map.
func CartFromSnapshot(snapshot map[int64]int) *Cart {
	c := NewCart()
	for id, qty := range snapshot {
		if qty > 0 {
			c.lines[id] = qty
		}
	}
	return c
}

// Quantity returns the quantity held for a product, zero when absent.
func (c *Cart) Quantity(productID int64) int {
	if c == nil || c.lines == nil {
		return 0
	}
	return c.lines[productID]
}

// SetQuantity replaces the quantity for a product. Non-positive quantities
// drop the line.
func (c *Cart) SetQuantity(productID int64, qty int) {
	if c.lines == nil {
		c.lines = make(map[int64]int)
	}
	if qty <= 0 {
		delete(c.lines, productID)
		return
	}
	c.lines[productID] = qty
}

// Remove deletes the line for a product and reports whether it was present.
func (c *Cart) Remove(productID int64) bool {
	if c == nil || c.lines == nil {
		return false
	}
	if _, ok := c.lines[productID]; !ok {
		return false
	}
	delete(c.lines, productID)
	return true
}

// Clear empties the cart. Clearing an already-empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = make(map[int64]int)
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	return c == nil || len(c.lines) == 0
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lines)
}

// Snapshot returns a defensive copy of the cart contents.
func (c *Cart) Snapshot() map[int64]int {
	out := make(map[int64]int, c.Len())
	if c == nil {
		return out
	}
	for id, qty := range c.lines {
		out[id] = qty
	}
	return out
}
