package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nujoom-retail/pos-backend/internal/modules/catalog"
)

// Engine holds the sale in progress. There is one logical actor at the
// terminal, but handlers run on separate goroutines, so access is
// mutex-guarded. The cart is never persisted; an abandoned sale dies with
// the process.
type Engine struct {
	mu      sync.Mutex
	items   []Item
	taxRate float64
}

// NewEngine creates an empty cart with the store's fixed tax rate.
func NewEngine(taxRate float64) *Engine {
	return &Engine{taxRate: taxRate}
}

// Add puts one unit of the product in the cart. A product already present
// gets its quantity bumped instead of a second line.
func (e *Engine) Add(p *catalog.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ProductID == p.ID {
			e.items[i].Quantity++
			return
		}
	}
	e.items = append(e.items, itemFromProduct(p))
}

// Remove deletes the line for the product; absent product is a no-op.
func (e *Engine) Remove(productID uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ProductID == productID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}

// AdjustQuantity changes a line's quantity by delta, flooring at 1.
// Use Remove to take a line out entirely.
func (e *Engine) AdjustQuantity(productID uuid.UUID, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ProductID == productID {
			q := e.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			e.items[i].Quantity = q
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
}

// Items returns a copy of the current lines in insertion order.
func (e *Engine) Items() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// Totals computes subtotal, tax and total for the current cart.
func (e *Engine) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totals(e.items)
}

// Snapshot returns the lines and their totals under a single lock, so the
// totals always match the returned items even while scans keep landing.
func (e *Engine) Snapshot() ([]Item, Totals) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out, e.totals(e.items)
}

// Deduct removes exactly the snapshotted quantities from the cart. Units
// scanned after the snapshot was taken stay in the cart for the next sale
// instead of being silently discarded.
func (e *Engine) Deduct(items []Item) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, taken := range items {
		for i := range e.items {
			if e.items[i].ProductID != taken.ProductID {
				continue
			}
			e.items[i].Quantity -= taken.Quantity
			if e.items[i].Quantity < 1 {
				e.items = append(e.items[:i], e.items[i+1:]...)
			}
			break
		}
	}
}

func (e *Engine) totals(items []Item) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	vat := subtotal * e.taxRate
	return Totals{Subtotal: subtotal, VAT: vat, Total: subtotal + vat}
}
