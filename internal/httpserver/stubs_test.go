package httpserver

import (
	"context"
	"io"
	"log"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"tienda/internal/domain"
	buyersvc "tienda/internal/service/buyer"
	catalogsvc "tienda/internal/service/catalog"
	"tienda/internal/session"
)

type stubCatalog struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubCatalog) List(_ context.Context) ([]domain.Product, error) { return s.products, s.err }

func (s *stubCatalog) Get(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalog) Create(_ context.Context, _ catalogsvc.CreateInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalog) Update(_ context.Context, _ int64, _ catalogsvc.UpdateInput) (*domain.Product, error) {
	return s.product, s.err
}

type stubCart struct {
	addQty     int
	addErr     error
	removeErr  error
	total      int64
	totalErr   error
	lastAddID  int64
	lastAddQty int
}

func (s *stubCart) Add(_ context.Context, c *domain.Cart, productID int64, quantity int) (int, error) {
	s.lastAddID = productID
	s.lastAddQty = quantity
	if s.addErr != nil {
		return 0, s.addErr
	}
	c.SetQuantity(productID, s.addQty)
	return s.addQty, nil
}

func (s *stubCart) Remove(c *domain.Cart, productID int64) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	c.Remove(productID)
	return nil
}

func (s *stubCart) Total(_ context.Context, _ *domain.Cart) (int64, error) {
	return s.total, s.totalErr
}

type stubOrders struct {
	order        *domain.Order
	err          error
	items        []domain.OrderItem
	orders       []domain.Order
	lastSnapshot map[int64]int
	lastBuyerID  int64
}

func (s *stubOrders) Checkout(_ context.Context, snapshot map[int64]int, buyerID int64) (*domain.Order, error) {
	s.lastSnapshot = snapshot
	s.lastBuyerID = buyerID
	return s.order, s.err
}

func (s *stubOrders) Get(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrders) Items(_ context.Context, _ int64) ([]domain.OrderItem, error) {
	return s.items, s.err
}

func (s *stubOrders) ListByBuyer(_ context.Context, _ int64) ([]domain.Order, error) {
	return s.orders, s.err
}

type stubRecommend struct {
	sales []domain.ProductSales
}

func (s *stubRecommend) TopSelling(_ context.Context, _ int) []domain.ProductSales {
	if s.sales == nil {
		return []domain.ProductSales{}
	}
	return s.sales
}

func (s *stubRecommend) TopForBuyer(_ context.Context, _ int64, _ int) []domain.ProductSales {
	if s.sales == nil {
		return []domain.ProductSales{}
	}
	return s.sales
}

type stubBuyers struct {
	buyer      *domain.Buyer
	err        error
	lastSignup buyersvc.SignupInput
}

func (s *stubBuyers) Signup(_ context.Context, in buyersvc.SignupInput) (*domain.Buyer, error) {
	s.lastSignup = in
	return s.buyer, s.err
}

func (s *stubBuyers) Login(_ context.Context, _, _ string) (*domain.Buyer, error) {
	return s.buyer, s.err
}

func (s *stubBuyers) Get(_ context.Context, _ int64) (*domain.Buyer, error) {
	return s.buyer, s.err
}

func testRouter(t interface{ Fatalf(string, ...interface{}) }, deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if deps.CartStore == nil {
		deps.CartStore = session.NewMemory()
	}
	router, err := buildRouter(log.New(io.Discard, "", 0), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

// withSession replays the session cookie from a prior response so requests
// share one cart.
func withSession(req *httptest.ResponseRecorder) string {
	for _, c := range req.Result().Cookies() {
		if c.Name == sessionCookie {
			return c.Value
		}
	}
	return ""
}
