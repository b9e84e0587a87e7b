// Package service реализует бизнес-логику POS-системы.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mmeshcher/hardstore-system/internal/cart"
	"github.com/mmeshcher/hardstore-system/internal/cartstore"
	"github.com/mmeshcher/hardstore-system/internal/model"
	"github.com/mmeshcher/hardstore-system/internal/repository"
	"github.com/mmeshcher/hardstore-system/internal/validation"
)

// ErrInvalidCredentials возвращается при неверном логине или пароле кассира.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	CreateCashier(ctx context.Context, login string, passwordHash []byte) (int64, error)
	GetCashierByLogin(ctx context.Context, login string) (*model.Cashier, error)
	ListProducts(ctx context.Context, search string) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) (int64, error)
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name, description string) (int64, error)
	FindCustomerByName(ctx context.Context, name string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, name string) (int64, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomerContact(ctx context.Context, id int64, name, phone, email string) error
	DeleteCustomer(ctx context.Context, id int64) error
	CreatePurchase(ctx context.Context, customerID, cashierID int64, lines []model.PurchaseLine, totalCents, pointsEarned int64) (int64, int64, error)
	ListPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error)
	AdjustStock(ctx context.Context, productID, delta int64, note string) (int64, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
	ListStockMovements(ctx context.Context, filter repository.MovementFilter) ([]model.StockMovement, error)
	GetDashboardMetrics(ctx context.Context) (*model.DashboardMetrics, error)
}

// CartStore описывает контракт хранилища отложенных корзин.
type CartStore interface {
	Close() error
	Save(lines []cart.Line) (string, error)
	List() ([]cartstore.Snapshot, error)
	Load(token string) (*cartstore.Snapshot, error)
	Delete(token string) error
}

// Service содержит бизнес-логику POS-системы.
type Service struct {
	repo  Repository
	carts CartStore

	// Активные корзины по идентификатору кассира. Мьютекс защищает только
	// карту: сама корзина принадлежит одной кассовой сессии.
	mu     sync.Mutex
	active map[int64]*cart.Cart
}

// NewService создаёт сервис с указанным репозиторием и хранилищем корзин.
func NewService(repo Repository, carts CartStore) *Service {
	return &Service{
		repo:   repo,
		carts:  carts,
		active: make(map[int64]*cart.Cart),
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.carts != nil {
		if err := s.carts.Close(); err != nil {
			return err
		}
	}
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// RegisterCashier регистрирует нового кассира.
func (s *Service) RegisterCashier(ctx context.Context, login, password string) (int64, error) {
	hashed := hashPassword(login, password)
	return s.repo.CreateCashier(ctx, login, hashed)
}

// AuthenticateCashier проверяет логин и пароль кассира и возвращает его идентификатор.
func (s *Service) AuthenticateCashier(ctx context.Context, login, password string) (int64, error) {
	c, err := s.repo.GetCashierByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrCashierNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	hashed := hashPassword(login, password)
	if hex.EncodeToString(hashed) != hex.EncodeToString(c.PasswordHash) {
		return 0, ErrInvalidCredentials
	}

	return c.ID, nil
}

func hashPassword(login, password string) []byte {
	sum := sha256.Sum256([]byte(login + ":" + password))
	return sum[:]
}

// ListProducts возвращает товары каталога, опционально по поисковой строке.
func (s *Service) ListProducts(ctx context.Context, search string) ([]model.Product, error) {
	return s.repo.ListProducts(ctx, strings.TrimSpace(search))
}

// CreateProduct создаёт товар после проверки карточки.
func (s *Service) CreateProduct(ctx context.Context, p *model.Product) (int64, error) {
	if err := validateProduct(p); err != nil {
		return 0, err
	}
	if p.Quantity < 0 {
		return 0, fmt.Errorf("%w: quantity must be non-negative", model.ErrValidation)
	}
	return s.repo.CreateProduct(ctx, p)
}

// UpdateProduct обновляет карточку товара.
func (s *Service) UpdateProduct(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.UpdateProduct(ctx, p)
}

func validateProduct(p *model.Product) error {
	if !validation.IsValidReference(p.Reference) {
		return fmt.Errorf("%w: reference must contain only letters and digits", model.ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", model.ErrValidation)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("%w: price must be non-negative", model.ErrValidation)
	}
	if p.MinQuantity < 0 {
		return fmt.Errorf("%w: min quantity must be non-negative", model.ErrValidation)
	}
	return nil
}

// DeleteProduct удаляет товар, если на него нет ссылок из покупок.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}

// ListCategories возвращает список категорий.
func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CreateCategory создаёт категорию.
func (s *Service) CreateCategory(ctx context.Context, name, description string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: category name is required", model.ErrValidation)
	}
	return s.repo.CreateCategory(ctx, name, description)
}

// cartFor возвращает активную корзину кассира, создавая её при первом обращении.
func (s *Service) cartFor(cashierID int64) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.active[cashierID]
	if !ok {
		c = cart.New()
		s.active[cashierID] = c
	}
	return c
}

// AddToCart добавляет товар в корзину кассира по актуальному остатку каталога.
func (s *Service) AddToCart(ctx context.Context, cashierID, productID, quantity int64) error {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	return s.cartFor(cashierID).AddLine(p.ID, p.Name, p.PriceCents, p.Quantity, quantity)
}

// RemoveFromCart удаляет позицию корзины по индексу.
func (s *Service) RemoveFromCart(cashierID int64, index int) error {
	return s.cartFor(cashierID).RemoveLine(index)
}

// CartLines возвращает позиции корзины кассира и её сумму в центах.
func (s *Service) CartLines(cashierID int64) ([]cart.Line, int64) {
	c := s.cartFor(cashierID)
	return c.Lines(), c.TotalCents()
}

// ClearCart очищает корзину кассира.
func (s *Service) ClearCart(cashierID int64) {
	s.cartFor(cashierID).Clear()
}

// ResolveCustomer находит покупателя по имени или создаёт нового
// с нулевыми накопителями.
func (s *Service) ResolveCustomer(ctx context.Context, name string) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: buyer name is required", model.ErrValidation)
	}

	c, err := s.repo.FindCustomerByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	id, err := s.repo.CreateCustomer(ctx, name)
	if err != nil {
		return nil, err
	}

	return &model.Customer{ID: id, Name: name}, nil
}

// loyaltyPoints начисляет 10 баллов за каждые полные $100 суммы покупки.
// Дробная часть отбрасывается: $95 даёт 9 баллов, $149.99 — 14.
func loyaltyPoints(totalCents int64) int64 {
	return totalCents / 1000
}

// CompletePurchase оформляет покупку по активной корзине кассира.
// Покупатель находится или создаётся по имени, покупка записывается
// атомарно, корзина очищается только при успехе.
func (s *Service) CompletePurchase(ctx context.Context, cashierID int64, buyerName string) (*model.Receipt, error) {
	c := s.cartFor(cashierID)
	if c.Empty() {
		return nil, model.ErrEmptyCart
	}

	customer, err := s.ResolveCustomer(ctx, buyerName)
	if err != nil {
		return nil, err
	}

	totalCents := c.TotalCents()
	pointsEarned := loyaltyPoints(totalCents)

	cartLines := c.Lines()
	lines := make([]model.PurchaseLine, 0, len(cartLines))
	for _, l := range cartLines {
		lines = append(lines, model.PurchaseLine{
			ProductID:      l.ProductID,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		})
	}

	purchaseID, newLoyaltyTotal, err := s.repo.CreatePurchase(ctx, customer.ID, cashierID, lines, totalCents, pointsEarned)
	if err != nil {
		return nil, err
	}

	c.Clear()

	return &model.Receipt{
		PurchaseID:      purchaseID,
		TotalCents:      totalCents,
		PointsEarned:    pointsEarned,
		NewLoyaltyTotal: newLoyaltyTotal,
	}, nil
}

// SaveCart откладывает активную корзину кассира и возвращает токен снимка.
func (s *Service) SaveCart(cashierID int64) (string, error) {
	c := s.cartFor(cashierID)
	if c.Empty() {
		return "", model.ErrEmptyCart
	}

	token, err := s.carts.Save(c.Lines())
	if err != nil {
		return "", err
	}

	c.Clear()
	return token, nil
}

// ListSavedCarts возвращает все отложенные корзины.
func (s *Service) ListSavedCarts() ([]cartstore.Snapshot, error) {
	return s.carts.List()
}

// RestoreCart восстанавливает отложенную корзину как активную корзину кассира.
// Каждая позиция заново проверяется по каталогу: товар должен существовать,
// остаток — покрывать сохранённое количество. Цены берутся из снимка.
func (s *Service) RestoreCart(ctx context.Context, cashierID int64, token string) error {
	snap, err := s.carts.Load(token)
	if err != nil {
		return err
	}

	restored := cart.New()
	for _, line := range snap.Lines {
		p, err := s.repo.GetProduct(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if err := restored.AddLine(line.ProductID, line.Name, line.UnitPriceCents, p.Quantity, line.Quantity); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.active[cashierID] = restored
	s.mu.Unlock()

	return s.carts.Delete(token)
}

// DeleteSavedCart удаляет отложенную корзину по токену.
func (s *Service) DeleteSavedCart(token string) error {
	return s.carts.Delete(token)
}

// AdjustStock изменяет складской остаток товара и возвращает новый остаток.
func (s *Service) AdjustStock(ctx context.Context, productID, delta int64, note string) (int64, error) {
	if delta == 0 {
		return 0, fmt.Errorf("%w: stock delta must be non-zero", model.ErrValidation)
	}
	return s.repo.AdjustStock(ctx, productID, delta, note)
}

// ListLowStock возвращает товары с остатком не выше минимального.
func (s *Service) ListLowStock(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListLowStock(ctx)
}

// ListStockMovements возвращает складские движения по фильтру.
func (s *Service) ListStockMovements(ctx context.Context, filter repository.MovementFilter) ([]model.StockMovement, error) {
	return s.repo.ListStockMovements(ctx, filter)
}

// GetDashboardMetrics возвращает агрегаты панели показателей.
func (s *Service) GetDashboardMetrics(ctx context.Context) (*model.DashboardMetrics, error) {
	return s.repo.GetDashboardMetrics(ctx)
}

// ListPurchaseHistory возвращает историю покупок.
func (s *Service) ListPurchaseHistory(ctx context.Context) ([]model.PurchaseRecord, error) {
	return s.repo.ListPurchaseHistory(ctx)
}

// ListCustomers возвращает всех покупателей.
func (s *Service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// UpdateCustomerContact обновляет контактные данные покупателя.
func (s *Service) UpdateCustomerContact(ctx context.Context, id int64, name, phone, email string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", model.ErrValidation)
	}
	return s.repo.UpdateCustomerContact(ctx, id, name, phone, email)
}

// DeleteCustomer удаляет покупателя без покупок.
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	return s.repo.DeleteCustomer(ctx, id)
}
