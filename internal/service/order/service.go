package order

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"

	"tienda/internal/domain"
	orderrepo "tienda/internal/repository/order"
)

// Service turns a cart snapshot into a persisted order. Totals are computed
// from catalog prices current at checkout time, not prices captured when the
// lines entered the cart.
type Service struct {
	orders   orderRepo
	buyers   buyerRepo
	products productRepo
	events   publisher
	logger   *log.Logger
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ItemsByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error)
}

type buyerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type publisher interface {
	OrderCreated(ctx context.Context, o domain.Order) error
}

func New(orders orderrepo.Repository, buyers buyerRepo, products productRepo, events publisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, buyers: buyers, products: products, events: events, logger: logger}
}

// Checkout validates the buyer, prices the snapshot and persists the order
// atomically. Snapshot entries whose product has vanished contribute nothing
// to the total but are still persisted as order lines; a snapshot in which no
// line priced yields ErrNoOrderTotal. Company accounts cannot place orders
// and fail as unknown buyers.
func (s *Service) Checkout(ctx context.Context, snapshot map[int64]int, buyerID int64) (*domain.Order, error) {
	if len(snapshot) == 0 {
		return nil, domain.ErrEmptyCart
	}

	b, err := s.buyers.GetByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBuyerNotFound
		}
		return nil, err
	}
	if b.Company {
		return nil, domain.ErrBuyerNotFound
	}

	ids := make([]int64, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var total int64
	lines := make([]orderrepo.Line, 0, len(ids))
	for _, id := range ids {
		qty := snapshot[id]
		lines = append(lines, orderrepo.Line{ProductID: id, Quantity: qty})
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		total += p.PriceCents * int64(qty)
	}
	if total == 0 {
		return nil, domain.ErrNoOrderTotal
	}

	o, err := s.orders.Create(ctx, orderrepo.CreateInput{
		BuyerID:    buyerID,
		TotalCents: total,
		Lines:      lines,
	})
	if err != nil {
		return nil, err
	}

	// Events are best-effort: a broker failure never undoes the order.
	if s.events != nil {
		if err := s.events.OrderCreated(ctx, *o); err != nil {
			s.logger.Printf("order service: publish order.created id=%d error=%v", o.ID, err)
		}
	}
	return o, nil
}

// Get returns the order header. Non-positive ids never match.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	return s.orders.GetByID(ctx, id)
}

// Items returns the order's lines with product name and unit price, the
// fields invoice and email senders rely on.
func (s *Service) Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	if orderID <= 0 {
		return nil, domain.ErrNotFound
	}
	return s.orders.ItemsByOrder(ctx, orderID)
}

// ListByBuyer returns the buyer's order history, newest first.
func (s *Service) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	return s.orders.ListByBuyer(ctx, buyerID)
}
