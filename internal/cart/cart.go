// Package cart implements the shopping cart store: ordered line items with
// quantity management, derived totals and a drawer visibility flag.
package cart

import (
	"sync"

	"lavka/internal/catalog"
)

// Line is one cart entry: a product snapshot plus a quantity.
//
// Name, price and image are copied from the catalog when the product is first
// added. Later catalog changes never reprice existing lines; the snapshot at
// add time is authoritative.
type Line struct {
	ProductID int
	Name      string
	Category  string
	Price     float64
	Image     string
	Quantity  int
}

// Subtotal returns price × quantity for this line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Observer is invoked after every cart mutation.
type Observer func(Event)

// Event describes a cart mutation for observers.
type Event struct {
	Op        string // "add", "remove", "quantity", "clear", "drawer"
	ProductID int
	Quantity  int
}

// Store owns the cart lines. All mutation happens through its methods; the
// zero value is unusable, construct with New.
//
// Invariants: at most one line per product id, quantity ≥ 1, insertion order
// preserved.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	open      bool
	observers []Observer
}

// New returns an empty cart store.
func New() *Store {
	return &Store{}
}

// Watch registers an observer called after each mutation. Observers run
// synchronously on the mutating call; keep them cheap.
func (s *Store) Watch(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Add inserts a new line with quantity 1, or increments the quantity of an
// existing line for the same product.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity++
			ev := Event{Op: "add", ProductID: p.ID, Quantity: s.lines[i].Quantity}
			s.notifyLocked(ev)
			return
		}
	}
	s.lines = append(s.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	s.notifyLocked(Event{Op: "add", ProductID: p.ID, Quantity: 1})
}

// Remove deletes the line for the product id. Absent ids are a no-op.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.notifyLocked(Event{Op: "remove", ProductID: productID})
			return
		}
	}
	s.mu.Unlock()
}

// SetQuantity sets the quantity for the product's line. Quantities of zero or
// below remove the line. Absent ids are a no-op.
func (s *Store) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			s.notifyLocked(Event{Op: "quantity", ProductID: productID, Quantity: quantity})
			return
		}
	}
	s.mu.Unlock()
}

// Clear drops every line. Drawer visibility is untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.notifyLocked(Event{Op: "clear"})
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return nil
	}
	dup := make([]Line, len(s.lines))
	copy(dup, s.lines)
	return dup
}

// TotalItems returns the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice returns the sum of per-line subtotals.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// SetOpen sets the drawer visibility flag.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	if s.open == open {
		s.mu.Unlock()
		return
	}
	s.open = open
	s.notifyLocked(Event{Op: "drawer"})
}

// IsOpen reports the drawer visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// notifyLocked releases the lock and invokes observers. Callers must hold the
// lock and must not touch state afterwards.
func (s *Store) notifyLocked(ev Event) {
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(ev)
	}
}
