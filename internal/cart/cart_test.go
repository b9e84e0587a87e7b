package cart

import (
	"errors"
	"testing"

	"github.com/mmeshcher/hardstore-system/internal/model"
)

func TestAddLineMergesSameProduct(t *testing.T) {
	c := New()

	if err := c.AddLine(7, "Hammer - 22oz", 500, 10, 3); err != nil {
		t.Fatalf("first AddLine: %v", err)
	}
	if err := c.AddLine(7, "Hammer - 22oz", 500, 10, 4); err != nil {
		t.Fatalf("second AddLine: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 7 {
		t.Fatalf("Quantity = %d, want 7", lines[0].Quantity)
	}

	err := c.AddLine(7, "Hammer - 22oz", 500, 10, 5)
	if !errors.Is(err, model.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock for 7+5 > 10, got %v", err)
	}
	if c.Lines()[0].Quantity != 7 {
		t.Fatalf("failed add must not change the line, got quantity %d", c.Lines()[0].Quantity)
	}
}

func TestAddLineRejectsNonPositiveQuantity(t *testing.T) {
	c := New()

	for _, qty := range []int64{0, -1} {
		err := c.AddLine(1, "Screwdriver", 499, 50, qty)
		if !errors.Is(err, model.ErrValidation) {
			t.Fatalf("AddLine(qty=%d) = %v, want ErrValidation", qty, err)
		}
	}
	if !c.Empty() {
		t.Fatalf("cart must stay empty after rejected adds")
	}
}

func TestAddLineRejectsOverStock(t *testing.T) {
	c := New()

	err := c.AddLine(1, "Drill", 8999, 2, 3)
	if !errors.Is(err, model.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestRemoveLine(t *testing.T) {
	c := New()
	_ = c.AddLine(1, "Drill", 8999, 20, 1)
	_ = c.AddLine(2, "Saw", 12999, 15, 2)

	if err := c.RemoveLine(0); err != nil {
		t.Fatalf("RemoveLine(0): %v", err)
	}
	lines := c.Lines()
	if len(lines) != 1 || lines[0].ProductID != 2 {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}

	err := c.RemoveLine(5)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("RemoveLine(5) = %v, want ErrNotFound", err)
	}
	err = c.RemoveLine(-1)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("RemoveLine(-1) = %v, want ErrNotFound", err)
	}
}

func TestTotalCentsIdempotent(t *testing.T) {
	c := New()
	_ = c.AddLine(1, "Drill", 8999, 20, 2)
	_ = c.AddLine(2, "Saw", 12999, 15, 1)
	_ = c.RemoveLine(1)
	_ = c.AddLine(3, "Tape", 999, 60, 3)

	want := int64(2*8999 + 3*999)
	if got := c.TotalCents(); got != want {
		t.Fatalf("TotalCents() = %d, want %d", got, want)
	}
	if got := c.TotalCents(); got != want {
		t.Fatalf("second TotalCents() = %d, want %d", got, want)
	}
}

func TestClear(t *testing.T) {
	c := New()
	_ = c.AddLine(1, "Drill", 8999, 20, 2)

	c.Clear()

	if !c.Empty() || c.TotalCents() != 0 {
		t.Fatalf("cart must be empty after Clear, len=%d total=%d", c.Len(), c.TotalCents())
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	_ = c.AddLine(1, "Drill", 8999, 20, 2)

	lines := c.Lines()
	lines[0].Quantity = 100

	if c.Lines()[0].Quantity != 2 {
		t.Fatalf("mutating the returned slice must not affect the cart")
	}
}
