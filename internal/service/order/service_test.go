package order

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"tienda/internal/domain"
	orderrepo "tienda/internal/repository/order"
)

type stubOrderRepo struct {
	created    *domain.Order
	createErr  error
	lastCreate orderrepo.CreateInput
	calls      int
	getOrder   *domain.Order
	getErr     error
	items      []domain.OrderItem
	itemsErr   error
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateInput) (*domain.Order, error) {
	s.lastCreate = in
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &domain.Order{ID: 1, BuyerID: in.BuyerID, TotalCents: in.TotalCents}, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubOrderRepo) ItemsByOrder(_ context.Context, _ int64) ([]domain.OrderItem, error) {
	return s.items, s.itemsErr
}

func (s *stubOrderRepo) ListByBuyer(_ context.Context, _ int64) ([]domain.Order, error) {
	return nil, nil
}

type stubBuyerRepo struct {
	buyer *domain.Buyer
	err   error
}

func (s *stubBuyerRepo) GetByID(_ context.Context, _ int64) (*domain.Buyer, error) {
	return s.buyer, s.err
}

type stubProductRepo struct {
	products map[int64]*domain.Product
}

func (s *stubProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubPublisher struct {
	published []domain.Order
	err       error
}

func (s *stubPublisher) OrderCreated(_ context.Context, o domain.Order) error {
	s.published = append(s.published, o)
	return s.err
}

func newService(orders *stubOrderRepo, buyers *stubBuyerRepo, products map[int64]*domain.Product, events publisher) *Service {
	return &Service{
		orders:   orders,
		buyers:   buyers,
		products: &stubProductRepo{products: products},
		events:   events,
		logger:   log.New(io.Discard, "", 0),
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7}}, nil, nil)

	_, err := svc.Checkout(context.Background(), map[int64]int{}, 7)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatalf("repo touched on empty cart")
	}
}

func TestCheckoutUnknownBuyer(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubBuyerRepo{err: domain.ErrNotFound}, map[int64]*domain.Product{
		1: {ID: 1, PriceCents: 100},
	}, nil)

	_, err := svc.Checkout(context.Background(), map[int64]int{1: 1}, 999999)
	if !errors.Is(err, domain.ErrBuyerNotFound) {
		t.Fatalf("expected ErrBuyerNotFound, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatalf("repo touched on unknown buyer")
	}
}

func TestCheckoutCompanyAccountCannotOrder(t *testing.T) {
	svc := newService(&stubOrderRepo{}, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7, Company: true}}, map[int64]*domain.Product{
		1: {ID: 1, PriceCents: 100},
	}, nil)

	_, err := svc.Checkout(context.Background(), map[int64]int{1: 1}, 7)
	if !errors.Is(err, domain.ErrBuyerNotFound) {
		t.Fatalf("expected ErrBuyerNotFound for company account, got %v", err)
	}
}

func TestCheckoutDecimalTotal(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7}}, map[int64]*domain.Product{
		1: {ID: 1, Name: "A", PriceCents: 1999},
		2: {ID: 2, Name: "B", PriceCents: 99},
	}, nil)

	o, err := svc.Checkout(context.Background(), map[int64]int{1: 2, 2: 3}, 7)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	// 2 x 19.99 + 3 x 0.99 = 42.95
	if o.TotalCents != 4295 {
		t.Fatalf("expected 4295 cents, got %d", o.TotalCents)
	}
	if orders.lastCreate.TotalCents != 4295 {
		t.Fatalf("repo received total %d", orders.lastCreate.TotalCents)
	}
}

func TestCheckoutSkipsVanishedProductButKeepsLine(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7}}, map[int64]*domain.Product{
		1: {ID: 1, PriceCents: 500},
	}, nil)

	o, err := svc.Checkout(context.Background(), map[int64]int{1: 2, 99: 1}, 7)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if o.TotalCents != 1000 {
		t.Fatalf("expected vanished product to price at zero, total %d", o.TotalCents)
	}
	// The vanished product still becomes an order line.
	if len(orders.lastCreate.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(orders.lastCreate.Lines))
	}
	if orders.lastCreate.Lines[0].ProductID != 1 || orders.lastCreate.Lines[1].ProductID != 99 {
		t.Fatalf("lines not in deterministic order: %+v", orders.lastCreate.Lines)
	}
}

func TestCheckoutAllLinesVanished(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7}}, nil, nil)

	_, err := svc.Checkout(context.Background(), map[int64]int{99: 1}, 7)
	if !errors.Is(err, domain.ErrNoOrderTotal) {
		t.Fatalf("expected ErrNoOrderTotal, got %v", err)
	}
	if orders.calls != 0 {
		t.Fatalf("repo touched when no total could be computed")
	}
}

func TestCheckoutRepoError(t *testing.T) {
	orders := &stubOrderRepo{createErr: errors.New("tx failed")}
	svc := newService(orders, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7}}, map[int64]*domain.Product{
		1: {ID: 1, PriceCents: 100},
	}, nil)

	_, err := svc.Checkout(context.Background(), map[int64]int{1: 1}, 7)
	if err == nil || err.Error() != "tx failed" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestCheckoutPublishesEvent(t *testing.T) {
	events := &stubPublisher{}
	svc := newService(&stubOrderRepo{}, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7}}, map[int64]*domain.Product{
		1: {ID: 1, PriceCents: 100},
	}, events)

	o, err := svc.Checkout(context.Background(), map[int64]int{1: 1}, 7)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(events.published) != 1 || events.published[0].ID != o.ID {
		t.Fatalf("expected one published event for order %d", o.ID)
	}
}

func TestCheckoutEventFailureDoesNotFailOrder(t *testing.T) {
	events := &stubPublisher{err: errors.New("broker down")}
	svc := newService(&stubOrderRepo{}, &stubBuyerRepo{buyer: &domain.Buyer{ID: 7}}, map[int64]*domain.Product{
		1: {ID: 1, PriceCents: 100},
	}, events)

	if _, err := svc.Checkout(context.Background(), map[int64]int{1: 1}, 7); err != nil {
		t.Fatalf("order failed on event error: %v", err)
	}
}

func TestGetRejectsNonPositiveID(t *testing.T) {
	svc := newService(&stubOrderRepo{getOrder: &domain.Order{ID: 1}}, &stubBuyerRepo{}, nil, nil)
	for _, id := range []int64{0, -5} {
		if _, err := svc.Get(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("id %d: expected ErrNotFound, got %v", id, err)
		}
	}
}
