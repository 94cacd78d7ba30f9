// Package cart implements the in-memory cart ledger: one line per distinct
// purchasable item, accumulated quantities, and derived totals.
package cart

import "github.com/JeremiasReinoso/MiFelisa/internal/catalog"

// Line is one ledger entry.
type Line struct {
	Key       string
	UnitPrice catalog.Money
	Quantity  int
}

// Subtotal is UnitPrice x Quantity.
func (l Line) Subtotal() catalog.Money {
	return l.UnitPrice * catalog.Money(l.Quantity)
}

// Totals summarises the ledger.
type Totals struct {
	ItemCount  int
	GrandTotal catalog.Money
}

// Ledger keeps lines keyed by display name in insertion order. Lines never
// hold a quantity below one. A Ledger is not safe for concurrent use; the
// session controller serialises access.
type Ledger struct {
	lines map[string]*Line
	order []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{lines: make(map[string]*Line)}
}

// Add increments the line for key, creating it with quantity one at
// unitPrice when absent. An existing line keeps its original unit price.
func (l *Ledger) Add(key string, unitPrice catalog.Money) {
	if line, ok := l.lines[key]; ok {
		line.Quantity++
		return
	}
	l.lines[key] = &Line{Key: key, UnitPrice: unitPrice, Quantity: 1}
	l.order = append(l.order, key)
}

// ChangeQuantity adds delta to the line for key and deletes the line once
// its quantity drops to zero or below. It reports whether key was present.
func (l *Ledger) ChangeQuantity(key string, delta int) bool {
	line, ok := l.lines[key]
	if !ok {
		return false
	}
	line.Quantity += delta
	if line.Quantity <= 0 {
		l.delete(key)
	}
	return true
}

// Remove deletes the line for key regardless of quantity. It reports whether
// key was present.
func (l *Ledger) Remove(key string) bool {
	if _, ok := l.lines[key]; !ok {
		return false
	}
	l.delete(key)
	return true
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.lines = make(map[string]*Line)
	l.order = nil
}

func (l *Ledger) delete(key string) {
	delete(l.lines, key)
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}

// Line returns a copy of the line for key.
func (l *Ledger) Line(key string) (Line, bool) {
	line, ok := l.lines[key]
	if !ok {
		return Line{}, false
	}
	return *line, true
}

// Lines returns copies of all lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.lines[key])
	}
	return out
}

// Len returns the number of distinct lines.
func (l *Ledger) Len() int { return len(l.order) }

// Empty reports whether the ledger has no lines.
func (l *Ledger) Empty() bool { return len(l.order) == 0 }

// Totals sums quantities and line subtotals.
func (l *Ledger) Totals() Totals {
	var t Totals
	for _, line := range l.lines {
		t.ItemCount += line.Quantity
		t.GrandTotal += line.Subtotal()
	}
	return t
}
