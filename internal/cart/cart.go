// Package cart implements the in-memory shopping cart engine: line item
// mutations, total computation, and the checkout state machine.
package cart

import (
	"errors"
	"sync"

	"portal/internal/models"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutInProgress is returned when a mutation or a second checkout
	// arrives while a checkout is already processing.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// Status is the checkout state of a cart.
type Status int

const (
	// StatusIdle means the cart accepts mutations and checkout.
	StatusIdle Status = iota
	// StatusProcessing means a checkout is in flight; mutations are rejected
	// until the cart returns to StatusIdle.
	StatusProcessing
)

// Cart holds one browsing session's line items. A cart starts empty and is
// owned by whichever session created it; it is safe for concurrent use.
type Cart struct {
	mu     sync.Mutex
	lines  []models.CartLine
	status Status
}

// New creates an empty cart in the idle state.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart. If a line for the product
// already exists its quantity is incremented; otherwise a new line is
// appended, snapshotting the product's name, price, and image. Rejected
// while a checkout is processing.
func (c *Cart) Add(product models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusProcessing {
		return ErrCheckoutInProgress
	}

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity++
			return nil
		}
	}

	c.lines = append(c.lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.DisplayImage(),
		Quantity:  1,
	})
	return nil
}

// UpdateQuantity adjusts the quantity of the line for id by delta, flooring
// at zero. A line reaching zero is removed outright; a quantity of zero is
// never observable. Unknown ids are a no-op, not an error.
func (c *Cart) UpdateQuantity(id, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusProcessing {
		return ErrCheckoutInProgress
	}

	for i := range c.lines {
		if c.lines[i].ProductID != id {
			continue
		}
		next := c.lines[i].Quantity + delta
		if next <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = next
		}
		return nil
	}
	return nil
}

// Remove drops the line for id if present; unknown ids are a no-op.
func (c *Cart) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusProcessing {
		return ErrCheckoutInProgress
	}

	for i := range c.lines {
		if c.lines[i].ProductID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

// Lines returns a copy of the current line items in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyLines(c.lines)
}

// TotalPrice sums price × quantity over all lines. Zero for an empty cart.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPrice(c.lines)
}

// TotalItems sums the quantities of all lines. Zero for an empty cart.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Status reports whether a checkout is currently processing.
func (c *Cart) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func copyLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func totalPrice(lines []models.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}
