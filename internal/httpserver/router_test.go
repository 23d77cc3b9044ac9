package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/domain"
	"storefront/internal/shopify"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

type stubCatalog struct {
	products    []domain.Product
	product     *domain.Product
	collections []domain.Collection
	err         error

	lastListOpts shopify.ProductListOptions
}

func (s *stubCatalog) Products(_ context.Context, opts shopify.ProductListOptions) ([]domain.Product, error) {
	s.lastListOpts = opts
	return s.products, s.err
}

func (s *stubCatalog) Product(_ context.Context, _ string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.product == nil {
		return nil, domain.ErrNotFound
	}
	return s.product, nil
}

func (s *stubCatalog) ProductRecommendations(_ context.Context, _ string) []domain.Product {
	return s.products
}

func (s *stubCatalog) Collections(_ context.Context, _ int) ([]domain.Collection, error) {
	return s.collections, s.err
}

func (s *stubCatalog) CollectionProducts(_ context.Context, _ shopify.CollectionProductsOptions) ([]domain.Product, error) {
	return s.products, s.err
}

type stubCheckoutGateway struct {
	cart      *domain.RemoteCart
	createErr error
	addErr    error
	lastLines []domain.CartLineInput
}

func (s *stubCheckoutGateway) CreateCart(_ context.Context) (*domain.RemoteCart, error) {
	return s.cart, s.createErr
}

func (s *stubCheckoutGateway) AddCartLines(_ context.Context, _ string, lines []domain.CartLineInput) (*domain.RemoteCart, error) {
	s.lastLines = lines
	return s.cart, s.addErr
}

func newTestRouter(catalog Catalog, gw checkout.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := testLogger()
	return buildRouter(log, Deps{
		Catalog:  catalog,
		Carts:    cart.NewManager(nil, log),
		Checkout: checkout.New(gw, false, log),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSessionCookieAssigned(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCheckoutGateway{})
	rec := doJSON(t, router, http.MethodGet, "/api/cart", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieSessionID && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("session cookie not set")
	}
}

func TestCartEndpointsFlow(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCheckoutGateway{})

	addBody := `{
	  "variantId": "var-1", "productId": "p1", "title": "Tee",
	  "price": {"amount": "19.99", "currencyCode": "USD"},
	  "quantity": 2,
	  "variant": {"title": "S", "selectedOptions": [{"name": "Size", "value": "S"}]}
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", addBody, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()

	var state cart.State
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.ItemCount != 2 || len(state.Items) != 1 {
		t.Fatalf("unexpected state: %+v", state)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/cart/items/var-1", `{"quantity": 5}`, cookies)
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.ItemCount != 5 {
		t.Fatalf("expected count 5, got %d", state.ItemCount)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/cart/items/var-1", "", cookies)
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", state)
	}
}

func TestAddItemRejectsMissingVariant(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCheckoutGateway{})
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items",
		`{"price": {"amount": "1.00", "currencyCode": "USD"}}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCheckoutGateway{})
	addBody := `{"variantId": "var-1", "price": {"amount": "1.00", "currencyCode": "USD"}}`
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", addBody, nil)
	cookies := rec.Result().Cookies()

	// Same cookie sees the item, a fresh browser does not.
	var state cart.State
	rec = doJSON(t, router, http.MethodGet, "/api/cart", "", cookies)
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.ItemCount != 1 {
		t.Fatalf("expected the session's item, got %+v", state)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/cart", "", nil)
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.ItemCount != 0 {
		t.Fatalf("fresh session saw another session's cart: %+v", state)
	}
}

func TestCheckoutRedirects(t *testing.T) {
	gw := &stubCheckoutGateway{
		cart: &domain.RemoteCart{ID: "rc-1", CheckoutURL: "https://shop.example/checkout/rc-1"},
	}
	router := newTestRouter(&stubCatalog{}, gw)

	addBody := `{"variantId": "var-1", "price": {"amount": "1.00", "currencyCode": "USD"}, "quantity": 3}`
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", addBody, nil)
	cookies := rec.Result().Cookies()

	rec = doJSON(t, router, http.MethodPost, "/api/checkout", "", cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "https://shop.example/checkout/rc-1" {
		t.Fatalf("unexpected location %q", loc)
	}
	if len(gw.lastLines) != 1 || gw.lastLines[0].Quantity != 3 {
		t.Fatalf("cart lines not submitted: %+v", gw.lastLines)
	}
}

func TestCheckoutFailureIsActionable(t *testing.T) {
	gw := &stubCheckoutGateway{
		cart:   &domain.RemoteCart{ID: "rc-1", CheckoutURL: "https://shop.example/checkout/rc-1"},
		addErr: &shopify.UserError{Message: "invalid merchandise id"},
	}
	router := newTestRouter(&stubCatalog{}, gw)

	addBody := `{"variantId": "bogus", "price": {"amount": "1.00", "currencyCode": "USD"}}`
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", addBody, nil)
	cookies := rec.Result().Cookies()

	rec = doJSON(t, router, http.MethodPost, "/api/checkout", "", cookies)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid merchandise id") {
		t.Fatalf("platform message not surfaced: %s", rec.Body.String())
	}

	// The cart survives the failed attempt.
	var state cart.State
	rec = doJSON(t, router, http.MethodGet, "/api/cart", "", cookies)
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.ItemCount != 1 {
		t.Fatalf("failed checkout emptied the cart: %+v", state)
	}
}

func TestCheckoutTransportFailureIs502(t *testing.T) {
	gw := &stubCheckoutGateway{createErr: errors.New("connection refused")}
	router := newTestRouter(&stubCatalog{}, gw)

	rec := doJSON(t, router, http.MethodPost, "/api/checkout", "", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestProductNotFoundIs404(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCheckoutGateway{})
	rec := doJSON(t, router, http.MethodGet, "/api/products/missing", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCatalogErrorIs502(t *testing.T) {
	catalog := &stubCatalog{err: &shopify.TransportError{Status: 500, Body: "boom"}}
	router := newTestRouter(catalog, &stubCheckoutGateway{})
	rec := doJSON(t, router, http.MethodGet, "/api/products", "", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestListProductsPassesQueryOptions(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Product{}}
	router := newTestRouter(catalog, &stubCheckoutGateway{})

	rec := doJSON(t, router, http.MethodGet, "/api/products?first=5&sort=TITLE&reverse=true&q=tee", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	opts := catalog.lastListOpts
	if opts.First != 5 || opts.SortKey != "TITLE" || !opts.Reverse || opts.Query != "tee" {
		t.Fatalf("options not passed through: %+v", opts)
	}
}
