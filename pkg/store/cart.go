package store

import (
	"sync"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"

	"github.com/google/uuid"
)

type (
	CartLine struct {
		Product  entities.Product
		Quantity int
	}

	// Cart holds one gardener's pending purchase. Lines keep insertion
	// order; a product id appears at most once. Adding a product that is
	// already present is rejected rather than incrementing the quantity,
	// matching the app's established behavior.
	Cart struct {
		mu    sync.Mutex
		lines []CartLine
	}
)

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(product entities.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		if line.Product.ID == product.ID {
			return domain.ErrProductAlreadyInCart
		}
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: 1})
	return nil
}

func (c *Cart) Remove(productID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(productID)
}

// SetQuantity overwrites a line's quantity. Zero removes the line.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return domain.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity == 0 {
		return c.removeLocked(productID)
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrCartLineNotFound
}

func (c *Cart) removeLocked(productID uuid.UUID) error {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrCartLineNotFound
}

func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
