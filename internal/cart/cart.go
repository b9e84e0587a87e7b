// Package cart реализует корзину одной кассовой сессии.
//
// Корзина живёт только в памяти и принадлежит ровно одной сессии,
// поэтому не требует внутренних блокировок. Остаток товара передаётся
// вызывающей стороной на момент добавления; авторитетная проверка
// остатков выполняется при оформлении покупки в транзакции БД.
package cart

import (
	"fmt"

	"github.com/mmeshcher/hardstore-system/internal/model"
)

// Line описывает одну позицию корзины со снимком цены на момент добавления.
type Line struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price"`
	Quantity       int64  `json:"quantity"`
}

// Cart содержит упорядоченный список позиций. На каждый товар — не более одной позиции.
type Cart struct {
	lines []Line
}

// New создаёт пустую корзину.
func New() *Cart {
	return &Cart{}
}

// AddLine добавляет товар в корзину. Если товар уже есть в корзине,
// количество прибавляется к существующей позиции. Суммарное количество
// не может превышать availableStock.
func (c *Cart) AddLine(productID int64, name string, unitPriceCents, availableStock, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", model.ErrValidation)
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			newQuantity := c.lines[i].Quantity + quantity
			if newQuantity > availableStock {
				return fmt.Errorf("%w: product %q", model.ErrInsufficientStock, name)
			}
			c.lines[i].Quantity = newQuantity
			return nil
		}
	}

	if quantity > availableStock {
		return fmt.Errorf("%w: product %q", model.ErrInsufficientStock, name)
	}

	c.lines = append(c.lines, Line{
		ProductID:      productID,
		Name:           name,
		UnitPriceCents: unitPriceCents,
		Quantity:       quantity,
	})

	return nil
}

// RemoveLine удаляет позицию по индексу. Остатки при этом не проверяются:
// корзина ничего не резервирует.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("%w: cart line %d", model.ErrNotFound, index)
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// TotalCents возвращает сумму корзины в центах. Значение всегда
// пересчитывается по текущим позициям и нигде не кэшируется.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Quantity * l.UnitPriceCents
	}
	return total
}

// Lines возвращает копию позиций корзины.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len возвращает число позиций в корзине.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty сообщает, пуста ли корзина.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear очищает корзину. Вызывается после успешной покупки или отмены.
func (c *Cart) Clear() {
	c.lines = nil
}
