package cart

import (
	"sync"

	"github.com/yeremiapane/restaurant-storefront/models"
)

// Listener receives the derived total and item count after every mutation.
type Listener func(total float64, count int)

// Cart holds the selected items for one customer session. Lines are keyed
// by item id and kept in insertion order for display. Totals are always
// computed from the lines, never stored.
type Cart struct {
	mu        sync.Mutex
	lines     []models.CartLine
	listeners []Listener
}

func New() *Cart {
	return &Cart{}
}

// Subscribe registers a listener that is invoked synchronously after each
// mutation. Listeners must not mutate the cart.
func (c *Cart) Subscribe(fn Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// AddItem appends a new line, or merges quantity into the existing line
// when the item is already in the cart. Quantities of zero or less are
// ignored so a line can never go negative.
func (c *Cart) AddItem(item models.MenuItem, quantity int) {
	if quantity <= 0 {
		return
	}

	c.mu.Lock()
	found := false
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, models.CartLine{
			ItemID:        item.ID,
			Name:          item.Name,
			CategoryLabel: item.CategoryLabel,
			UnitPrice:     item.Price,
			Quantity:      quantity,
		})
	}
	total, count, ls := c.snapshot()
	c.mu.Unlock()

	notify(ls, total, count)
}

// UpdateQuantity sets the quantity of a line. Zero or less removes the
// line. Unknown item ids are ignored.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	c.mu.Lock()
	idx := -1
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.mu.Unlock()
		return
	}

	if quantity <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	} else {
		c.lines[idx].Quantity = quantity
	}
	total, count, ls := c.snapshot()
	c.mu.Unlock()

	notify(ls, total, count)
}

func (c *Cart) RemoveItem(itemID string) {
	c.UpdateQuantity(itemID, 0)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	ls := c.listeners
	c.mu.Unlock()

	notify(ls, 0, 0)
}

// Total returns the sum of unit price times quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total, _ := c.totals()
	return total
}

// Count returns the sum of quantities, used for the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, count := c.totals()
	return count
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// DraftItems flattens the lines into the shape POST /orders expects.
func (c *Cart) DraftItems() []models.DraftItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.DraftItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.DraftItem{
			MenuItemID: l.ItemID,
			Quantity:   l.Quantity,
			Price:      l.UnitPrice,
		})
	}
	return items
}

// totals must be called with the mutex held.
func (c *Cart) totals() (float64, int) {
	var total float64
	var count int
	for _, l := range c.lines {
		total += l.Subtotal()
		count += l.Quantity
	}
	return total, count
}

// snapshot must be called with the mutex held.
func (c *Cart) snapshot() (float64, int, []Listener) {
	total, count := c.totals()
	return total, count, c.listeners
}

func notify(ls []Listener, total float64, count int) {
	for _, fn := range ls {
		fn(total, count)
	}
}
