// Package handler содержит HTTP-обработчики API POS-системы.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/hardstore-system/internal/cart"
	"github.com/mmeshcher/hardstore-system/internal/cartstore"
	"github.com/mmeshcher/hardstore-system/internal/middleware"
	"github.com/mmeshcher/hardstore-system/internal/model"
	"github.com/mmeshcher/hardstore-system/internal/repository"
	"github.com/mmeshcher/hardstore-system/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	RegisterCashier(ctx context.Context, login, password string) (int64, error)
	AuthenticateCashier(ctx context.Context, login, password string) (int64, error)
	ListProducts(ctx context.Context, search string) ([]model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) (int64, error)
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name, description string) (int64, error)
	AddToCart(ctx context.Context, cashierID, productID, quantity int64) error
	RemoveFromCart(cashierID int64, index int) error
	CartLines(cashierID int64) ([]cart.Line, int64)
	ClearCart(cashierID int64)
	CompletePurchase(ctx context.Context, cashierID int64, buyerName string) (*model.Receipt, error)
	SaveCart(cashierID int64) (string, error)
	ListSavedCarts() ([]cartstore.Snapshot, error)
	RestoreCart(ctx context.Context, cashierID int64, token string) error
	DeleteSavedCart(token string) error
	AdjustStock(ctx context.Context, productID, delta int64, note string) (int64, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
	ListStockMovements(ctx context.Context, filter repository.MovementFilter) ([]model.StockMovement, error)
	GetDashboardMetrics(ctx context.Context) (*model.DashboardMetrics, error)
	ListPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomerContact(ctx context.Context, id int64, name, phone, email string) error
	DeleteCustomer(ctx context.Context, id int64) error
}

// Handler реализует HTTP-обработчики API POS-системы.
type Handler struct {
	service        Service
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{
		service:        s,
		logger:         logger,
		authMiddleware: auth,
	}
}

func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

func dollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// writeError преобразует доменные ошибки в HTTP-статусы.
func (h *Handler) writeError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrInsufficientStock),
		errors.Is(err, repository.ErrCashierExists),
		errors.Is(err, repository.ErrCategoryExists),
		errors.Is(err, repository.ErrReferenceExists),
		errors.Is(err, repository.ErrProductReferenced),
		errors.Is(err, repository.ErrCustomerReferenced):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error(logMsg, zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}

func cashierFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.GetCashierIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return id, ok
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию нового кассира.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Login == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cashierID, err := h.service.RegisterCashier(r.Context(), req.Login, req.Password)
	if err != nil {
		h.writeError(w, err, "register cashier error")
		return
	}

	h.authMiddleware.SetAuthCookie(w, cashierID)
	w.WriteHeader(http.StatusOK)
}

// Login выполняет аутентификацию кассира и установку cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Login == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cashierID, err := h.service.AuthenticateCashier(r.Context(), req.Login, req.Password)
	if err != nil {
		h.writeError(w, err, "login cashier error")
		return
	}

	h.authMiddleware.SetAuthCookie(w, cashierID)
	w.WriteHeader(http.StatusOK)
}

type productResponse struct {
	ID          int64   `json:"id"`
	Reference   string  `json:"reference"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	MinQuantity int64   `json:"min_quantity"`
	CategoryID  *int64  `json:"category_id,omitempty"`
}

func toProductResponse(p model.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Reference:   p.Reference,
		Name:        p.Name,
		Description: p.Description,
		Price:       centsToDollars(p.PriceCents),
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		CategoryID:  p.CategoryID,
	}
}

// ListProducts возвращает каталог товаров, опционально по поисковой строке q.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, err, "list products error")
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type productRequest struct {
	Reference   string  `json:"reference"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	MinQuantity int64   `json:"min_quantity"`
	CategoryID  *int64  `json:"category_id"`
}

// CreateProduct создаёт товар каталога.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	p := model.Product{
		Reference:   req.Reference,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  dollarsToCents(req.Price),
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		CategoryID:  req.CategoryID,
	}

	id, err := h.service.CreateProduct(r.Context(), &p)
	if err != nil {
		h.writeError(w, err, "create product error")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdateProduct обновляет карточку товара.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	p := model.Product{
		ID:          id,
		Reference:   req.Reference,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  dollarsToCents(req.Price),
		MinQuantity: req.MinQuantity,
		CategoryID:  req.CategoryID,
	}

	if err := h.service.UpdateProduct(r.Context(), &p); err != nil {
		h.writeError(w, err, "update product error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteProduct удаляет товар каталога.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.writeError(w, err, "delete product error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type categoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListCategories возвращает список категорий.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, err, "list categories error")
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, categoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory создаёт категорию.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		h.writeError(w, err, "create category error")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type cartLineResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type cartResponse struct {
	Lines []cartLineResponse `json:"lines"`
	Total float64            `json:"total"`
}

func toCartResponse(lines []cart.Line, totalCents int64) cartResponse {
	resp := cartResponse{
		Lines: make([]cartLineResponse, 0, len(lines)),
		Total: centsToDollars(totalCents),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, cartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: centsToDollars(l.UnitPriceCents),
			LineTotal: centsToDollars(l.Quantity * l.UnitPriceCents),
		})
	}
	return resp
}

// GetCart возвращает активную корзину кассира.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cashierID, ok := cashierFromContext(w, r)
	if !ok {
		return
	}

	lines, total := h.service.CartLines(cashierID)
	h.writeJSON(w, http.StatusOK, toCartResponse(lines, total))
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// AddCartItem добавляет товар в корзину кассира.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	cashierID, ok := cashierFromContext(w, r)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.AddToCart(r.Context(), cashierID, req.ProductID, req.Quantity); err != nil {
		h.writeError(w, err, "add to cart error")
		return
	}

	lines, total := h.service.CartLines(cashierID)
	h.writeJSON(w, http.StatusOK, toCartResponse(lines, total))
}

// RemoveCartItem удаляет позицию корзины по индексу.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cashierID, ok := cashierFromContext(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveFromCart(cashierID, index); err != nil {
		h.writeError(w, err, "remove from cart error")
		return
	}

	lines, total := h.service.CartLines(cashierID)
	h.writeJSON(w, http.StatusOK, toCartResponse(lines, total))
}

// ClearCart очищает корзину кассира (отмена покупки).
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cashierID, ok := cashierFromContext(w, r)
	if !ok {
		return
	}

	h.service.ClearCart(cashierID)
	w.WriteHeader(http.StatusOK)
}

type checkoutRequest struct {
	BuyerName string `json:"buyer_name"`
}

type receiptResponse struct {
	PurchaseID   int64   `json:"purchase_id"`
	Total        float64 `json:"total"`
	PointsEarned int64   `json:"points_earned"`
	LoyaltyTotal int64   `json:"loyalty_total"`
}

// Checkout оформляет покупку по активной корзине кассира.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	cashierID, ok := cashierFromContext(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	receipt, err := h.service.CompletePurchase(r.Context(), cashierID, req.BuyerName)
	if err != nil {
		h.writeError(w, err, "checkout error")
		return
	}

	h.writeJSON(w, http.StatusOK, receiptResponse{
		PurchaseID:   receipt.PurchaseID,
		Total:        centsToDollars(receipt.TotalCents),
		PointsEarned: receipt.PointsEarned,
		LoyaltyTotal: receipt.NewLoyaltyTotal,
	})
}

// SaveCart откладывает активную корзину кассира.
func (h *Handler) SaveCart(w http.ResponseWriter, r *http.Request) {
	cashierID, ok := cashierFromContext(w, r)
	if !ok {
		return
	}

	token, err := h.service.SaveCart(cashierID)
	if err != nil {
		h.writeError(w, err, "save cart error")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

type savedCartResponse struct {
	Token   string  `json:"token"`
	Lines   int     `json:"lines"`
	Total   float64 `json:"total"`
	SavedAt string  `json:"saved_at"`
}

// ListSavedCarts возвращает список отложенных корзин.
func (h *Handler) ListSavedCarts(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.service.ListSavedCarts()
	if err != nil {
		h.writeError(w, err, "list saved carts error")
		return
	}

	resp := make([]savedCartResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		var totalCents int64
		for _, l := range snap.Lines {
			totalCents += l.Quantity * l.UnitPriceCents
		}
		resp = append(resp, savedCartResponse{
			Token:   snap.Token,
			Lines:   len(snap.Lines),
			Total:   centsToDollars(totalCents),
			SavedAt: snap.SavedAt.Format(time.RFC3339),
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// RestoreCart делает отложенную корзину активной корзиной кассира.
func (h *Handler) RestoreCart(w http.ResponseWriter, r *http.Request) {
	cashierID, ok := cashierFromContext(w, r)
	if !ok {
		return
	}

	token := chi.URLParam(r, "token")

	if err := h.service.RestoreCart(r.Context(), cashierID, token); err != nil {
		h.writeError(w, err, "restore cart error")
		return
	}

	lines, total := h.service.CartLines(cashierID)
	h.writeJSON(w, http.StatusOK, toCartResponse(lines, total))
}

// DeleteSavedCart удаляет отложенную корзину.
func (h *Handler) DeleteSavedCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSavedCart(chi.URLParam(r, "token")); err != nil {
		h.writeError(w, err, "delete saved cart error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type adjustStockRequest struct {
	ProductID int64  `json:"product_id"`
	Delta     int64  `json:"delta"`
	Note      string `json:"note"`
}

// AdjustStock изменяет складской остаток товара.
func (h *Handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	newQuantity, err := h.service.AdjustStock(r.Context(), req.ProductID, req.Delta, req.Note)
	if err != nil {
		h.writeError(w, err, "adjust stock error")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int64{"quantity": newQuantity})
}

type movementResponse struct {
	ID             int64  `json:"id"`
	ProductID      int64  `json:"product_id"`
	Reference      string `json:"reference"`
	ProductName    string `json:"product_name"`
	QuantityChange int64  `json:"quantity_change"`
	Type           string `json:"type"`
	Note           string `json:"note,omitempty"`
	CurrentStock   int64  `json:"current_stock"`
	CreatedAt      string `json:"created_at"`
}

// ListStockMovements возвращает складские движения по фильтрам запроса.
func (h *Handler) ListStockMovements(w http.ResponseWriter, r *http.Request) {
	var filter repository.MovementFilter

	if v := r.URL.Query().Get("product_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		filter.ProductID = id
	}
	filter.Type = model.MovementType(r.URL.Query().Get("type"))

	movements, err := h.service.ListStockMovements(r.Context(), filter)
	if err != nil {
		h.writeError(w, err, "list stock movements error")
		return
	}

	resp := make([]movementResponse, 0, len(movements))
	for _, m := range movements {
		resp = append(resp, movementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			Reference:      m.Reference,
			ProductName:    m.ProductName,
			QuantityChange: m.QuantityChange,
			Type:           string(m.Type),
			Note:           m.Note,
			CurrentStock:   m.CurrentStock,
			CreatedAt:      m.CreatedAt.Format(time.RFC3339),
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// ListStockAlerts возвращает товары с остатком не выше минимального.
func (h *Handler) ListStockAlerts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListLowStock(r.Context())
	if err != nil {
		h.writeError(w, err, "list stock alerts error")
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type dashboardResponse struct {
	TotalProducts       int64                 `json:"total_products"`
	InventoryValue      float64               `json:"inventory_value"`
	LowStockCount       int64                 `json:"low_stock_count"`
	ProductsPerCategory []model.CategoryCount `json:"products_per_category"`
}

// GetDashboard возвращает агрегаты панели показателей.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.GetDashboardMetrics(r.Context())
	if err != nil {
		h.writeError(w, err, "dashboard error")
		return
	}

	h.writeJSON(w, http.StatusOK, dashboardResponse{
		TotalProducts:       metrics.TotalProducts,
		InventoryValue:      centsToDollars(metrics.InventoryValueCents),
		LowStockCount:       metrics.LowStockCount,
		ProductsPerCategory: metrics.ProductsPerCategory,
	})
}

type purchaseRecordResponse struct {
	PurchasedAt  string  `json:"purchased_at"`
	BuyerName    string  `json:"buyer_name"`
	ProductName  string  `json:"product_name"`
	Quantity     int64   `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	LineTotal    float64 `json:"line_total"`
	PointsEarned int64   `json:"points_earned"`
}

// ListPurchases возвращает историю покупок.
func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListPurchaseHistory(r.Context())
	if err != nil {
		h.writeError(w, err, "list purchases error")
		return
	}

	if len(records) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]purchaseRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, purchaseRecordResponse{
			PurchasedAt:  rec.PurchasedAt.Format(time.RFC3339),
			BuyerName:    rec.BuyerName,
			ProductName:  rec.ProductName,
			Quantity:     rec.Quantity,
			UnitPrice:    centsToDollars(rec.UnitPriceCents),
			LineTotal:    centsToDollars(rec.LineTotalCents),
			PointsEarned: rec.PointsEarned,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type customerResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone,omitempty"`
	Email         string  `json:"email,omitempty"`
	LoyaltyPoints int64   `json:"loyalty_points"`
	TotalSpent    float64 `json:"total_spent"`
}

// ListCustomers возвращает список покупателей.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.writeError(w, err, "list customers error")
		return
	}

	resp := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, customerResponse{
			ID:            c.ID,
			Name:          c.Name,
			Phone:         c.Phone,
			Email:         c.Email,
			LoyaltyPoints: c.LoyaltyPoints,
			TotalSpent:    centsToDollars(c.TotalSpentCents),
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type customerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateCustomer обновляет контактные данные покупателя.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateCustomerContact(r.Context(), id, req.Name, req.Phone, req.Email); err != nil {
		h.writeError(w, err, "update customer error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteCustomer удаляет покупателя без покупок.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		h.writeError(w, err, "delete customer error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
