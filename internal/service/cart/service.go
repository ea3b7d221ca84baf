package cart

import (
	"context"
	"errors"

	"tienda/internal/domain"
	productrepo "tienda/internal/repository/product"
)

// DefaultMaxPerProduct is the hard per-product ceiling for cart lines.
const DefaultMaxPerProduct = 5

// Service enforces the cart rules: a line never exceeds the lesser of the
// per-product ceiling and the request's claim on current stock, and never
// holds a non-positive quantity. The cart itself is owned by the caller's
// session and passed in explicitly.
type Service struct {
	products      productRepo
	maxPerProduct int
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(products productrepo.Repository) *Service {
	return &Service{products: products, maxPerProduct: DefaultMaxPerProduct}
}

// Add puts quantity units of a product into the cart and returns the
// resulting line quantity. The stock check considers the incoming request
// alone; the ceiling check considers the resulting line total. On any
// rejection the cart is left unchanged.
func (s *Service) Add(ctx context.Context, c *domain.Cart, productID int64, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	if quantity > p.Stock {
		return 0, &domain.InsufficientStockError{ProductID: productID, Requested: quantity, Available: p.Stock}
	}
	newTotal := c.Quantity(productID) + quantity
	if newTotal > s.maxPerProduct {
		return 0, &domain.CartLimitError{
			ProductID: productID,
			Requested: quantity,
			InCart:    c.Quantity(productID),
			Limit:     s.maxPerProduct,
		}
	}
	c.SetQuantity(productID, newTotal)
	return newTotal, nil
}

// Remove drops the product's line. It reports domain.ErrNotFound when the
// product was not in the cart, though the cart ends up the same either way.
func (s *Service) Remove(c *domain.Cart, productID int64) error {
	if !c.Remove(productID) {
		return domain.ErrNotFound
	}
	return nil
}

// Total sums current catalog price times quantity over the cart. Lines whose
// product no longer exists contribute nothing rather than failing the sum.
func (s *Service) Total(ctx context.Context, c *domain.Cart) (int64, error) {
	var total int64
	for id, qty := range c.Snapshot() {
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return 0, err
		}
		total += p.PriceCents * int64(qty)
	}
	return total, nil
}
