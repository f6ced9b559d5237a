package store

import (
	"errors"
	"testing"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"

	"github.com/google/uuid"
)

func testProduct(name string, price float64) entities.Product {
	return entities.Product{ID: uuid.New(), Name: name, Price: price, InStock: true}
}

// Re-adding a product must stay a blocked no-op, not a quantity increment.
func TestCart_DuplicateAddBlocked(t *testing.T) {
	cart := NewCart()
	seeds := testProduct("Tomato Seeds", 3.50)

	if err := cart.Add(seeds); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := cart.Add(seeds); !errors.Is(err, domain.ErrProductAlreadyInCart) {
		t.Fatalf("expected ErrProductAlreadyInCart, got %v", err)
	}

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", lines[0].Quantity)
	}
}

func TestCart_TotalIdentity(t *testing.T) {
	cart := NewCart()
	neem := testProduct("Neem Oil", 9.90)
	gloves := testProduct("Garden Gloves", 4.25)
	trowel := testProduct("Hand Trowel", 7.00)

	for _, p := range []entities.Product{neem, gloves, trowel} {
		if err := cart.Add(p); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if err := cart.SetQuantity(neem.ID, 3); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if err := cart.Remove(gloves.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := cart.SetQuantity(trowel.ID, 2); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	var want float64
	for _, line := range cart.Lines() {
		want += line.Product.Price * float64(line.Quantity)
	}
	if got := cart.Total(); got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
	if got := cart.Total(); got != 9.90*3+7.00*2 {
		t.Errorf("Total() = %v, want %v", got, 9.90*3+7.00*2)
	}
}

func TestCart_SetQuantityZeroRemoves(t *testing.T) {
	cart := NewCart()
	seeds := testProduct("Basil Seeds", 2.10)

	if err := cart.Add(seeds); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cart.SetQuantity(seeds.ID, 0); err != nil {
		t.Fatalf("set quantity to zero failed: %v", err)
	}
	if len(cart.Lines()) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(cart.Lines()))
	}
	if cart.Total() != 0 {
		t.Errorf("expected zero total, got %v", cart.Total())
	}
}

func TestCart_ErrorsOnUnknownLine(t *testing.T) {
	cart := NewCart()

	if err := cart.Remove(uuid.New()); !errors.Is(err, domain.ErrCartLineNotFound) {
		t.Errorf("expected ErrCartLineNotFound from Remove, got %v", err)
	}
	if err := cart.SetQuantity(uuid.New(), 2); !errors.Is(err, domain.ErrCartLineNotFound) {
		t.Errorf("expected ErrCartLineNotFound from SetQuantity, got %v", err)
	}
	if err := cart.SetQuantity(uuid.New(), -1); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}
