package httpserver

import (
	"context"

	"tienda/internal/domain"
	buyersvc "tienda/internal/service/buyer"
	catalogsvc "tienda/internal/service/catalog"
	"tienda/internal/session"
)

// Narrow views of the services, so handler tests can stub them.

type catalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in catalogsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in catalogsvc.UpdateInput) (*domain.Product, error)
}

type cartService interface {
	Add(ctx context.Context, c *domain.Cart, productID int64, quantity int) (int, error)
	Remove(c *domain.Cart, productID int64) error
	Total(ctx context.Context, c *domain.Cart) (int64, error)
}

type orderService interface {
	Checkout(ctx context.Context, snapshot map[int64]int, buyerID int64) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error)
}

type recommendService interface {
	TopSelling(ctx context.Context, limit int) []domain.ProductSales
	TopForBuyer(ctx context.Context, buyerID int64, limit int) []domain.ProductSales
}

type buyerService interface {
	Signup(ctx context.Context, in buyersvc.SignupInput) (*domain.Buyer, error)
	Login(ctx context.Context, email, password string) (*domain.Buyer, error)
	Get(ctx context.Context, id int64) (*domain.Buyer, error)
}

type cartStore = session.Store
