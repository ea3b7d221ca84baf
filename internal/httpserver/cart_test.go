package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda/internal/domain"
	"tienda/internal/session"
)

func TestAddToCartMintsSessionCookie(t *testing.T) {
	cartSvc := &stubCart{addQty: 2}
	router := testRouter(t, Deps{CartSvc: cartSvc})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":1,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if withSession(rec) == "" {
		t.Fatalf("expected a session cookie to be set")
	}
	if cartSvc.lastAddID != 1 || cartSvc.lastAddQty != 2 {
		t.Fatalf("service saw product=%d qty=%d", cartSvc.lastAddID, cartSvc.lastAddQty)
	}
}

func TestAddToCartPersistsAcrossRequests(t *testing.T) {
	store := session.NewMemory()
	cartSvc := &stubCart{addQty: 2, total: 2598}
	router := testRouter(t, Deps{CartSvc: cartSvc, CartStore: store})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":1,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	sid := withSession(rec)

	req2 := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req2.AddCookie(&http.Cookie{Name: sessionCookie, Value: sid})
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)

	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec2.Code)
	}
	var body struct {
		Lines      []cartLineResponse `json:"lines"`
		TotalCents int64              `json:"totalCents"`
	}
	if err := json.Unmarshal(rec2.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Lines) != 1 || body.Lines[0].ProductID != 1 || body.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines %+v", body.Lines)
	}
	if body.TotalCents != 2598 {
		t.Fatalf("expected total 2598, got %d", body.TotalCents)
	}
}

func TestAddToCartCapacityFailureCarriesNumbers(t *testing.T) {
	cartSvc := &stubCart{addErr: &domain.CartLimitError{ProductID: 1, Requested: 2, InCart: 4, Limit: 5}}
	router := testRouter(t, Deps{CartSvc: cartSvc})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":1,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["inCart"] != float64(4) || body["limit"] != float64(5) {
		t.Fatalf("capacity numbers missing: %v", body)
	}
}

func TestAddToCartInsufficientStock(t *testing.T) {
	cartSvc := &stubCart{addErr: &domain.InsufficientStockError{ProductID: 1, Requested: 9, Available: 3}}
	router := testRouter(t, Deps{CartSvc: cartSvc})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":1,"quantity":9}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRemoveFromCartNotFound(t *testing.T) {
	cartSvc := &stubCart{removeErr: domain.ErrNotFound}
	router := testRouter(t, Deps{CartSvc: cartSvc})

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestClearCart(t *testing.T) {
	store := session.NewMemory()
	router := testRouter(t, Deps{CartSvc: &stubCart{}, CartStore: store})

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
