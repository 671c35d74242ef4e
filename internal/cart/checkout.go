package cart

import (
	"time"

	"portal/internal/models"
)

// Checkout is the handle for an in-flight checkout. It exists so a future
// real payment call can replace the simulated timer without changing the
// state machine: the Processing state stays a cancellable unit of work.
type Checkout struct {
	cart  *Cart
	timer *time.Timer
}

// Checkout begins the Idle → Processing transition. The snapshot of the
// cart's lines is taken here, before any delay elapses, so the eventual
// receipt reflects exactly the items present when processing began. After
// the delay the cart is cleared and returns to Idle in one step, then
// onComplete is invoked with the snapshot and its total.
//
// An empty cart returns ErrEmptyCart; a call while another checkout is
// processing returns ErrCheckoutInProgress. Neither starts a second run.
func (c *Cart) Checkout(delay time.Duration, onComplete func(lines []models.CartLine, total float64)) (*Checkout, error) {
	c.mu.Lock()
	if c.status == StatusProcessing {
		c.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	if len(c.lines) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}

	c.status = StatusProcessing
	snapshot := copyLines(c.lines)
	total := totalPrice(c.lines)
	c.mu.Unlock()

	co := &Checkout{cart: c}
	co.timer = time.AfterFunc(delay, func() {
		c.complete()
		if onComplete != nil {
			onComplete(snapshot, total)
		}
	})
	return co, nil
}

// complete clears the cart and returns it to Idle. Mutations were rejected
// for the whole Processing window, so the lines cleared here are exactly the
// ones snapshotted when the checkout began.
func (c *Cart) complete() {
	c.mu.Lock()
	c.lines = nil
	c.status = StatusIdle
	c.mu.Unlock()
}

// Cancel aborts a checkout whose delay has not yet elapsed, returning the
// cart to Idle with its lines intact. It reports whether the checkout was
// actually stopped; false means completion already ran (or was underway).
// No current caller cancels, but the transition is kept representable.
func (co *Checkout) Cancel() bool {
	if !co.timer.Stop() {
		return false
	}
	co.cart.mu.Lock()
	co.cart.status = StatusIdle
	co.cart.mu.Unlock()
	return true
}
