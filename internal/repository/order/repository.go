package order

import (
	"context"

	"tienda/internal/domain"
)

// Line is one product/quantity pair persisted with an order.
type Line struct {
	ProductID int64
	Quantity  int
}

// CreateInput carries everything the order transaction persists.
type CreateInput struct {
	BuyerID    int64
	TotalCents int64
	Lines      []Line
}

type Repository interface {
	// Create persists the order header, its line items and the stock
	// decrements as a single transaction.
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ItemsByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error)
	TopSelling(ctx context.Context, limit int) ([]domain.ProductSales, error)
	TopByBuyer(ctx context.Context, buyerID int64, limit int) ([]domain.ProductSales, error)
}
