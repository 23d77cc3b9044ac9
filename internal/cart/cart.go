package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// Cart is the client-side staging area for a checkout: an ordered list of
// line items with cached derived totals. It is the only state the storefront
// owns; the platform cart exists only from checkout onwards.
//
// Items are keyed by variant id: adding a variant that is already present
// increments its quantity, the add-time snapshot (title, price, image) wins
// over whatever the catalog says later. Derived fields are recomputed with a
// full pass after every item mutation rather than adjusted incrementally, so
// they can never drift from the item list.
type Cart struct {
	mu          sync.Mutex
	items       []domain.LineItem
	isOpen      bool
	itemCount   int
	totalAmount decimal.Decimal

	store Store
	key   string
	log   logrus.FieldLogger
}

// State is a point-in-time copy of the cart handed to callers. Items is a
// fresh slice; mutating it does not touch the cart.
type State struct {
	Items       []domain.LineItem `json:"items"`
	IsOpen      bool              `json:"isOpen"`
	ItemCount   int               `json:"itemCount"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
}

// New returns an empty cart bound to one storage slot. A nil store disables
// persistence; the cart then lives only as long as the process.
func New(store Store, key string, log logrus.FieldLogger) *Cart {
	return &Cart{
		store:       store,
		key:         key,
		log:         log,
		totalAmount: decimal.Zero,
	}
}

// Restore loads the persisted snapshot for the cart's slot, if any. A missing
// slot yields the empty cart; a corrupt one is logged and discarded rather
// than crashing the session. The drawer always starts closed and the derived
// fields are recomputed from the restored items, never trusted from storage.
func (c *Cart) Restore(ctx context.Context) {
	if c.store == nil {
		return
	}
	items, err := loadSnapshot(ctx, c.store, c.key)
	if err != nil {
		c.log.WithError(err).WithField("key", c.key).Warn("discarding persisted cart")
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.isOpen = false
	c.recompute()
}

// AddItem merges one item into the cart. A quantity below 1 is treated as 1,
// matching the "add to cart" button's default.
func (c *Cart) AddItem(ctx context.Context, item domain.LineItem) State {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	merged := false
	for i := range c.items {
		if c.items[i].VariantID == item.VariantID {
			c.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, item)
	}
	c.recompute()
	c.persist(ctx)
	return c.stateLocked()
}

// RemoveItem drops the line with the given variant id. Removing an absent
// variant is a no-op, not an error.
func (c *Cart) RemoveItem(ctx context.Context, variantID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(variantID)
	c.recompute()
	c.persist(ctx)
	return c.stateLocked()
}

// UpdateQuantity sets an absolute quantity for the line with the given
// variant id. A quantity of zero or less removes the line, so a quantity
// below 1 is never stored. Unknown variant ids are ignored.
func (c *Cart) UpdateQuantity(ctx context.Context, variantID string, quantity int) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.removeLocked(variantID)
	} else {
		for i := range c.items {
			if c.items[i].VariantID == variantID {
				c.items[i].Quantity = quantity
				break
			}
		}
	}
	c.recompute()
	c.persist(ctx)
	return c.stateLocked()
}

// Clear resets the cart to its initial empty state.
func (c *Cart) Clear(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.isOpen = false
	c.recompute()
	c.persist(ctx)
	return c.stateLocked()
}

// Toggle flips the drawer's visibility. Pure UI state: items and totals are
// untouched and nothing is persisted.
func (c *Cart) Toggle() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = !c.isOpen
	return c.stateLocked()
}

// Open shows the drawer.
func (c *Cart) Open() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = true
	return c.stateLocked()
}

// Close hides the drawer.
func (c *Cart) Close() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = false
	return c.stateLocked()
}

// State returns a copy of the current cart state.
func (c *Cart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []domain.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.LineItem(nil), c.items...)
}

func (c *Cart) removeLocked(variantID string) {
	for i := range c.items {
		if c.items[i].VariantID == variantID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// recompute rebuilds both derived fields from the item list. Amounts are
// summed as exact decimals; a cart mixing currencies is still summed
// arithmetically, as the platform's storefront client does.
func (c *Cart) recompute() {
	count := 0
	total := decimal.Zero
	for _, item := range c.items {
		count += item.Quantity
		total = total.Add(item.Price.Decimal().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.itemCount = count
	c.totalAmount = total
}

// persist writes the snapshot best-effort. A failed write is logged and the
// in-memory state stays authoritative for the rest of the session.
func (c *Cart) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := saveSnapshot(ctx, c.store, c.key, c.items, c.itemCount, c.totalAmount); err != nil {
		c.log.WithError(err).WithField("key", c.key).Warn("persisting cart failed")
	}
}

func (c *Cart) stateLocked() State {
	return State{
		Items:       append([]domain.LineItem(nil), c.items...),
		IsOpen:      c.isOpen,
		ItemCount:   c.itemCount,
		TotalAmount: c.totalAmount,
	}
}
