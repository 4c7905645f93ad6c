// Package cart implements the transient cart session used to build a sale.
//
// A Session is created from a catalog snapshot. Selection (which items are in
// the cart) and desired quantities are tracked separately: toggling an item
// never sets a quantity, and a selected item with quantity zero is simply left
// off the bill. Sessions are never persisted.
package cart

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/kiranakart/internal/calculator"
	"github.com/mmynk/kiranakart/internal/models"
)

var (
	// ErrNotSelected is returned when a quantity is set for an item that is
	// not in the cart.
	ErrNotSelected = errors.New("item is not in the cart")

	// ErrFinalized is returned by every mutation after Finalize succeeded.
	ErrFinalized = errors.New("cart session already finalized")
)

// State is the lifecycle position of a Session.
type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Quantity is the outcome of SetQuantity. Warning is set when the request
// exceeded stock and Value was clamped to it.
type Quantity struct {
	Value   int
	Warning *models.OutOfStockWarning
}

// Line is a selected item together with its desired quantity.
type Line struct {
	Item     models.Item
	Quantity int
}

// Session is a single cart. It is not safe for concurrent use.
type Session struct {
	snapshot   map[string]models.Item
	order      []string
	quantities map[string]int
	finalized  bool
}

// New starts a session over the given catalog snapshot.
func New(items []models.Item) *Session {
	snapshot := make(map[string]models.Item, len(items))
	for _, item := range items {
		snapshot[item.ID] = item
	}
	return &Session{
		snapshot:   snapshot,
		quantities: make(map[string]int),
	}
}

// State reports where the session is in its lifecycle.
func (s *Session) State() State {
	switch {
	case s.finalized:
		return StateFinalized
	case len(s.order) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// Toggle adds itemID to the cart if absent and removes it if present.
func (s *Session) Toggle(itemID string) error {
	if s.finalized {
		return ErrFinalized
	}
	if _, ok := s.snapshot[itemID]; !ok {
		return &models.NotFoundError{Kind: "item", ID: itemID}
	}
	if s.selected(itemID) {
		s.drop(itemID)
		return nil
	}
	s.order = append(s.order, itemID)
	return nil
}

// SetQuantity stores the desired quantity typed for itemID. Non-digit
// characters are stripped from raw; an empty result means zero. A value above
// the item's stock is clamped to the stock and reported as a warning.
func (s *Session) SetQuantity(itemID, raw string) (Quantity, error) {
	if s.finalized {
		return Quantity{}, ErrFinalized
	}
	item, ok := s.snapshot[itemID]
	if !ok {
		return Quantity{}, &models.NotFoundError{Kind: "item", ID: itemID}
	}
	if !s.selected(itemID) {
		return Quantity{}, ErrNotSelected
	}

	requested, overflow := sanitize(raw)
	if overflow || requested > item.Stock {
		s.quantities[itemID] = item.Stock
		return Quantity{
			Value:   item.Stock,
			Warning: &models.OutOfStockWarning{ItemID: itemID, Max: item.Stock},
		}, nil
	}

	s.quantities[itemID] = requested
	return Quantity{Value: requested}, nil
}

// Remove drops itemID from the cart, forgetting its quantity.
func (s *Session) Remove(itemID string) error {
	if s.finalized {
		return ErrFinalized
	}
	s.drop(itemID)
	return nil
}

// Lines returns the selected items in selection order.
func (s *Session) Lines() []Line {
	lines := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, Line{Item: s.snapshot[id], Quantity: s.quantities[id]})
	}
	return lines
}

// Total is the running cart value. Items without a price count as zero.
func (s *Session) Total() decimal.Decimal {
	total := decimal.Zero
	for _, id := range s.order {
		total = total.Add(calculator.LineTotal(s.quantities[id], s.snapshot[id].Price))
	}
	return total
}

// Finalize returns the positive-quantity lines numbered 1..N in selection
// order and closes the session. With no positive line it returns
// models.ErrEmptyCart and the session stays open.
func (s *Session) Finalize() ([]models.FinalizedLine, error) {
	if s.finalized {
		return nil, ErrFinalized
	}

	var lines []models.FinalizedLine
	for _, id := range s.order {
		qty := s.quantities[id]
		if qty <= 0 {
			continue
		}
		item := s.snapshot[id]
		lines = append(lines, models.FinalizedLine{
			Seq:       len(lines) + 1,
			ItemID:    id,
			Name:      item.Name,
			Quantity:  qty,
			UnitPrice: item.Price,
			LineTotal: calculator.LineTotal(qty, item.Price),
		})
	}
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	s.finalized = true
	return lines, nil
}

func (s *Session) selected(itemID string) bool {
	for _, id := range s.order {
		if id == itemID {
			return true
		}
	}
	return false
}

func (s *Session) drop(itemID string) {
	for i, id := range s.order {
		if id == itemID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	delete(s.quantities, itemID)
}

// sanitize keeps only the digits of raw. overflow is true when the digits do
// not fit in an int.
func sanitize(raw string) (n int, overflow bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, true
	}
	return n, false
}
