package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/mmeshcher/hardstore-system/internal/cart"
	"github.com/mmeshcher/hardstore-system/internal/cartstore"
	"github.com/mmeshcher/hardstore-system/internal/middleware"
	"github.com/mmeshcher/hardstore-system/internal/model"
	"github.com/mmeshcher/hardstore-system/internal/repository"
)

type stubService struct {
	authCashierID int64
	authErr       error

	productsResp []model.Product
	productsErr  error

	addToCartErr error

	cartLines []cart.Line
	cartTotal int64

	receipt     *model.Receipt
	checkoutErr error

	adjustQuantity int64
	adjustErr      error

	lowStockResp []model.Product

	metricsResp *model.DashboardMetrics
}

func (s *stubService) RegisterCashier(ctx context.Context, login, password string) (int64, error) {
	return s.authCashierID, s.authErr
}

func (s *stubService) AuthenticateCashier(ctx context.Context, login, password string) (int64, error) {
	return s.authCashierID, s.authErr
}

func (s *stubService) ListProducts(ctx context.Context, search string) ([]model.Product, error) {
	return s.productsResp, s.productsErr
}

func (s *stubService) CreateProduct(ctx context.Context, p *model.Product) (int64, error) {
	return 1, nil
}

func (s *stubService) UpdateProduct(ctx context.Context, p *model.Product) error { return nil }
func (s *stubService) DeleteProduct(ctx context.Context, id int64) error         { return nil }

func (s *stubService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return nil, nil
}

func (s *stubService) CreateCategory(ctx context.Context, name, description string) (int64, error) {
	return 1, nil
}

func (s *stubService) AddToCart(ctx context.Context, cashierID, productID, quantity int64) error {
	return s.addToCartErr
}

func (s *stubService) RemoveFromCart(cashierID int64, index int) error { return nil }

func (s *stubService) CartLines(cashierID int64) ([]cart.Line, int64) {
	return s.cartLines, s.cartTotal
}

func (s *stubService) ClearCart(cashierID int64) {}

func (s *stubService) CompletePurchase(ctx context.Context, cashierID int64, buyerName string) (*model.Receipt, error) {
	return s.receipt, s.checkoutErr
}

func (s *stubService) SaveCart(cashierID int64) (string, error) { return "token-1", nil }

func (s *stubService) ListSavedCarts() ([]cartstore.Snapshot, error) { return nil, nil }

func (s *stubService) RestoreCart(ctx context.Context, cashierID int64, token string) error {
	return nil
}

func (s *stubService) DeleteSavedCart(token string) error { return nil }

func (s *stubService) AdjustStock(ctx context.Context, productID, delta int64, note string) (int64, error) {
	return s.adjustQuantity, s.adjustErr
}

func (s *stubService) ListLowStock(ctx context.Context) ([]model.Product, error) {
	return s.lowStockResp, nil
}

func (s *stubService) ListStockMovements(ctx context.Context, filter repository.MovementFilter) ([]model.StockMovement, error) {
	return nil, nil
}

func (s *stubService) GetDashboardMetrics(ctx context.Context) (*model.DashboardMetrics, error) {
	return s.metricsResp, nil
}

func (s *stubService) ListPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error) {
	return nil, nil
}

func (s *stubService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return nil, nil
}

func (s *stubService) UpdateCustomerContact(ctx context.Context, id int64, name, phone, email string) error {
	return nil
}

func (s *stubService) DeleteCustomer(ctx context.Context, id int64) error { return nil }

func newTestHandler(svc *stubService) (*Handler, *middleware.AuthMiddleware) {
	auth := middleware.NewAuthMiddleware("test-secret")
	return NewHandler(svc, zap.NewNop(), auth), auth
}

func authCookie(auth *middleware.AuthMiddleware, cashierID int64) *http.Cookie {
	rec := httptest.NewRecorder()
	auth.SetAuthCookie(rec, cashierID)
	return rec.Result().Cookies()[0]
}

func TestCheckout_Success(t *testing.T) {
	svc := &stubService{
		receipt: &model.Receipt{
			PurchaseID:      7,
			TotalCents:      15000,
			PointsEarned:    15,
			NewLoyaltyTotal: 15,
		},
	}
	h, auth := newTestHandler(svc)
	router := h.SetupRouter()

	body := bytes.NewBufferString(`{"buyer_name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", body)
	req.AddCookie(authCookie(auth, 1))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", resp.Code, http.StatusOK, resp.Body.String())
	}

	var got receiptResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.PurchaseID != 7 || got.Total != 150.0 || got.PointsEarned != 15 || got.LoyaltyTotal != 15 {
		t.Fatalf("unexpected receipt: %+v", got)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := &stubService{checkoutErr: model.ErrEmptyCart}
	h, auth := newTestHandler(svc)
	router := h.SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(`{"buyer_name":"Alice"}`))
	req.AddCookie(authCookie(auth, 1))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusBadRequest)
	}
}

func TestCheckout_InsufficientStock(t *testing.T) {
	svc := &stubService{
		checkoutErr: fmt.Errorf("%w: product %q", model.ErrInsufficientStock, "Power Drill - 18V"),
	}
	h, auth := newTestHandler(svc)
	router := h.SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(`{"buyer_name":"Alice"}`))
	req.AddCookie(authCookie(auth, 1))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusConflict)
	}
}

func TestCheckout_Unauthorized(t *testing.T) {
	h, _ := newTestHandler(&stubService{})
	router := h.SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(`{"buyer_name":"Alice"}`))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
}

func TestAddCartItem_ReturnsCart(t *testing.T) {
	svc := &stubService{
		cartLines: []cart.Line{
			{ProductID: 1, Name: "Power Drill - 18V", UnitPriceCents: 5000, Quantity: 3},
		},
		cartTotal: 15000,
	}
	h, auth := newTestHandler(svc)
	router := h.SetupRouter()

	body := bytes.NewBufferString(`{"product_id":1,"quantity":3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", body)
	req.AddCookie(authCookie(auth, 1))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}

	var got cartResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].LineTotal != 150.0 || got.Total != 150.0 {
		t.Fatalf("unexpected cart: %+v", got)
	}
}

func TestListProducts_NoAuthRequired(t *testing.T) {
	svc := &stubService{
		productsResp: []model.Product{
			{ID: 1, Reference: "DL005", Name: "Power Drill - 18V", PriceCents: 8999, Quantity: 20, MinQuantity: 10},
		},
	}
	h, _ := newTestHandler(svc)
	router := h.SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/products?q=drill", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}

	var got []productResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Price != 89.99 {
		t.Fatalf("unexpected products: %+v", got)
	}
}

func TestAdjustStock_InsufficientStock(t *testing.T) {
	svc := &stubService{
		adjustErr: fmt.Errorf("%w: product %q", model.ErrInsufficientStock, "Saw"),
	}
	h, auth := newTestHandler(svc)
	router := h.SetupRouter()

	body := bytes.NewBufferString(`{"product_id":1,"delta":-100}`)
	req := httptest.NewRequest(http.MethodPost, "/api/stock/adjust", body)
	req.AddCookie(authCookie(auth, 1))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusConflict)
	}
}

func TestRemoveCartItem_BadIndex(t *testing.T) {
	svc := &stubService{}
	h, auth := newTestHandler(svc)
	router := h.SetupRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/abc", nil)
	req.AddCookie(authCookie(auth, 1))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusBadRequest)
	}
}
