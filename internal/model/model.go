// Package model содержит доменные сущности POS-системы магазина.
package model

import "time"

// Cashier представляет учётную запись кассира.
type Cashier struct {
	ID           int64
	Login        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Category описывает товарную категорию.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Product описывает товар каталога. Цена хранится в центах.
type Product struct {
	ID          int64
	Reference   string
	Name        string
	Description string
	PriceCents  int64
	Quantity    int64
	MinQuantity int64
	CategoryID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Customer представляет покупателя программы лояльности.
// Имя не уникально: при совпадении имён поиск возвращает первую запись.
type Customer struct {
	ID              int64
	Name            string
	Phone           string
	Email           string
	LoyaltyPoints   int64
	TotalSpentCents int64
	CreatedAt       time.Time
}

// PurchaseLine описывает одну позицию покупки с ценой на момент продажи.
type PurchaseLine struct {
	ProductID      int64
	Quantity       int64
	UnitPriceCents int64
}

// Receipt содержит результат завершённой покупки.
type Receipt struct {
	PurchaseID      int64
	TotalCents      int64
	PointsEarned    int64
	NewLoyaltyTotal int64
}

// PurchaseRecord описывает строку истории покупок для отчётов.
type PurchaseRecord struct {
	PurchasedAt    time.Time
	BuyerName      string
	ProductName    string
	Quantity       int64
	UnitPriceCents int64
	LineTotalCents int64
	PointsEarned   int64
}

// MovementType описывает направление складского движения.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// StockMovement описывает одно изменение складского остатка.
type StockMovement struct {
	ID             int64
	ProductID      int64
	Reference      string
	ProductName    string
	QuantityChange int64
	Type           MovementType
	Note           string
	CurrentStock   int64
	CreatedAt      time.Time
}

// DashboardMetrics содержит агрегаты для панели показателей.
type DashboardMetrics struct {
	TotalProducts       int64
	InventoryValueCents int64
	LowStockCount       int64
	ProductsPerCategory []CategoryCount
}

// CategoryCount содержит число товаров в категории.
type CategoryCount struct {
	Category string
	Count    int64
}
