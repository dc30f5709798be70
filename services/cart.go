package services

import (
	"sync"

	"github.com/FEBRIAN80/managmnt-food/entity"
)

// CartLine is one aggregated entry of the active checkout session:
// one menu, its selected quantity and the derived subtotal.
type CartLine struct {
	MenuID    uint   `json:"menuId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
	Subtotal  int64  `json:"subtotal"`
}

// Cart keeps the operator's selection in insertion order, at most one line
// per menu. It is plain in-memory state owned by the engine; it never holds
// a line with qty <= 0.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart { return &Cart{} }

// AddItem merges into an existing line (qty+1) or appends a new line with
// qty 1, preserving insertion order.
func (c *Cart) AddItem(m *entity.Menu) {
	for i := range c.lines {
		if c.lines[i].MenuID == m.ID {
			c.lines[i].Qty++
			c.lines[i].Subtotal = int64(c.lines[i].Qty) * c.lines[i].UnitPrice
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		MenuID:    m.ID,
		Name:      m.Name,
		UnitPrice: m.Price,
		Qty:       1,
		Subtotal:  m.Price,
	})
}

// ChangeQty applies delta with a floor at 0; reaching 0 removes the line.
func (c *Cart) ChangeQty(menuID uint, delta int) {
	for i := range c.lines {
		if c.lines[i].MenuID != menuID {
			continue
		}
		qty := c.lines[i].Qty + delta
		if qty <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Qty = qty
		c.lines[i].Subtotal = int64(qty) * c.lines[i].UnitPrice
		return
	}
}

// RemoveItem drops the line unconditionally; no-op when absent.
func (c *Cart) RemoveItem(menuID uint) {
	for i := range c.lines {
		if c.lines[i].MenuID == menuID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Lines returns a copy so callers cannot mutate cart state behind its back.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// CartStore keeps one cart per cashier station. Each cart is single-operator;
// the mutex only guards the lookup maps and the in-flight checkout flag.
type CartStore struct {
	mu       sync.Mutex
	carts    map[uint]*Cart
	inFlight map[uint]bool
}

func NewCartStore() *CartStore {
	return &CartStore{
		carts:    make(map[uint]*Cart),
		inFlight: make(map[uint]bool),
	}
}

// Get returns the cashier's cart, creating an empty one on first use.
func (s *CartStore) Get(cashierID uint) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[cashierID]
	if !ok {
		c = NewCart()
		s.carts[cashierID] = c
	}
	return c
}

// BeginCheckout marks the cashier's cart as mid-commit. It reports false when
// a commit is already suspended on storage, so a double submit cannot produce
// two transactions for one cart state.
func (s *CartStore) BeginCheckout(cashierID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[cashierID] {
		return false
	}
	s.inFlight[cashierID] = true
	return true
}

func (s *CartStore) EndCheckout(cashierID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, cashierID)
}
