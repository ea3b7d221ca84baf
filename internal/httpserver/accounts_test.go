package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda/internal/domain"
	buyersvc "tienda/internal/service/buyer"
)

func TestSignupRejectsBadDNIAtBinding(t *testing.T) {
	buyers := &stubBuyers{buyer: &domain.Buyer{ID: 1}}
	router := testRouter(t, Deps{BuyerSvc: buyers})

	body := `{"email":"ana@example.com","password":"Secreta1","identityNumber":"12345678A"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad control letter, got %d", rec.Code)
	}
}

func TestSignupAcceptsValidDNI(t *testing.T) {
	buyers := &stubBuyers{buyer: &domain.Buyer{ID: 1, Email: "ana@example.com"}}
	router := testRouter(t, Deps{BuyerSvc: buyers})

	body := `{"email":"ana@example.com","password":"Secreta1","identityNumber":"12345678Z"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if buyers.lastSignup.IdentityNumber != "12345678Z" || buyers.lastSignup.Company {
		t.Fatalf("unexpected signup input %+v", buyers.lastSignup)
	}
}

func TestCompanySignupRequiresCIF(t *testing.T) {
	buyers := &stubBuyers{buyer: &domain.Buyer{ID: 2, Company: true}}
	router := testRouter(t, Deps{BuyerSvc: buyers})

	// Missing identity number fails the binding, not the service.
	body := `{"email":"empresa@example.com","password":"Secreta1"}`
	req := httptest.NewRequest(http.MethodPost, "/signup/company", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	body = `{"email":"empresa@example.com","password":"Secreta1","identityNumber":"B12345674"}`
	req = httptest.NewRequest(http.MethodPost, "/signup/company", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !buyers.lastSignup.Company {
		t.Fatalf("company flag not set")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	buyers := &stubBuyers{err: buyersvc.ErrInvalidCredentials}
	router := testRouter(t, Deps{BuyerSvc: buyers})

	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
