package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart rejects checkout of a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBuyerNotFound rejects checkout for an unknown buyer.
	ErrBuyerNotFound = errors.New("buyer not found")
	// ErrNoOrderTotal is returned when no cart line resolved to a priced
	// product, so no order total could be computed.
	ErrNoOrderTotal = errors.New("could not compute order total")
	// ErrInvalidQuantity rejects non-positive cart quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// ValidationError marks bad input shape: the message is safe to show the
// caller verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// InsufficientStockError reports a request exceeding available stock, with
// the numbers a caller needs to render a precise message.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

// CartLimitError reports a request that would push a cart line past the
// per-product ceiling.
type CartLimitError struct {
	ProductID int64
	Requested int
	InCart    int
	Limit     int
}

func (e *CartLimitError) Error() string {
	return fmt.Sprintf("cart limit exceeded for product %d: %d in cart, %d requested, limit %d", e.ProductID, e.InCart, e.Requested, e.Limit)
}
