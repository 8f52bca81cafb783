package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"smart-table-api/menu"
)

// Line is one cart entry: the price snapshot taken when the item was
// first added, and a quantity that is always ≥ 1. A line whose quantity
// would drop to 0 is removed, never stored.
type Line struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart is a diner's in-progress, unsubmitted selection, keyed by item
// name. It is owned by a single table session; Sessions serializes
// access for callers.
type Cart struct {
	lines map[string]Line
}

func New() *Cart {
	return &Cart{lines: make(map[string]Line)}
}

// Add inserts the item with quantity 1 at its current price, or
// increments the quantity if already present.
func (c *Cart) Add(item menu.Item) {
	line, ok := c.lines[item.Name]
	if !ok {
		c.lines[item.Name] = Line{Price: item.Price, Quantity: 1}
		return
	}
	line.Quantity++
	c.lines[item.Name] = line
}

// Remove decrements the named line, deleting it when the quantity
// reaches 0. Removing an absent name is a no-op.
func (c *Cart) Remove(name string) {
	line, ok := c.lines[name]
	if !ok {
		return
	}
	line.Quantity--
	if line.Quantity <= 0 {
		delete(c.lines, name)
		return
	}
	c.lines[name] = line
}

// Total is the sum of price × quantity over all lines; zero for an
// empty cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Snapshot returns a copy of the cart's lines, safe to hand to the
// order store.
func (c *Cart) Snapshot() map[string]Line {
	snap := make(map[string]Line, len(c.lines))
	for name, line := range c.lines {
		snap[name] = line
	}
	return snap
}

// Clear empties the cart. Called exactly once per successful order
// placement, when ownership of the items moves to the order store.
func (c *Cart) Clear() {
	c.lines = make(map[string]Line)
}

// Sessions holds one cart per active table session. Independent diner
// tabs may hit the server concurrently, so the registry guards every
// cart operation.
type Sessions struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewSessions() *Sessions {
	return &Sessions{carts: make(map[string]*Cart)}
}

// cart returns the table's cart, creating it on first use. Callers must
// hold mu.
func (s *Sessions) cart(table string) *Cart {
	c, ok := s.carts[table]
	if !ok {
		c = New()
		s.carts[table] = c
	}
	return c
}

func (s *Sessions) Add(table string, item menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(table).Add(item)
}

func (s *Sessions) Remove(table, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(table).Remove(name)
}

func (s *Sessions) Total(table string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.carts[table]; ok {
		return c.Total()
	}
	return decimal.Zero
}

func (s *Sessions) Snapshot(table string) map[string]Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.carts[table]; ok {
		return c.Snapshot()
	}
	return map[string]Line{}
}

func (s *Sessions) Clear(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[table]; ok {
		c.Clear()
	}
}
