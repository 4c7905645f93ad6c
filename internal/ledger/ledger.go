// Package ledger stores the history of completed sales.
package ledger

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/kiranakart/internal/calculator"
	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/storage"
)

// Ledger is the append-only collection of bills under storage.KeyBills.
type Ledger struct {
	store storage.Store
}

// Summary aggregates the ledger for the sales screen header.
type Summary struct {
	Bills   int             `json:"bills"`
	Revenue decimal.Decimal `json:"revenue"`
}

// New creates a Ledger persisting through store.
func New(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// History returns every bill in insertion order (oldest first).
func (l *Ledger) History(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	if _, err := storage.GetJSON(ctx, l.store, storage.KeyBills, &bills); err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills, nil
}

// List returns bills most recent first.
func (l *Ledger) List(ctx context.Context) ([]models.Bill, error) {
	bills, err := l.History(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(bills)
	return bills, nil
}

// Get returns the bill with the given ID.
func (l *Ledger) Get(ctx context.Context, id string) (models.Bill, error) {
	bills, err := l.History(ctx)
	if err != nil {
		return models.Bill{}, err
	}
	for _, bill := range bills {
		if bill.ID == id {
			return bill, nil
		}
	}
	return models.Bill{}, &models.NotFoundError{Kind: "bill", ID: id}
}

// Append adds bill to the end of the ledger.
func (l *Ledger) Append(ctx context.Context, bill models.Bill) error {
	bills, err := l.History(ctx)
	if err != nil {
		return err
	}
	if err := storage.SetJSON(ctx, l.store, storage.KeyBills, append(bills, bill)); err != nil {
		return fmt.Errorf("failed to save bills: %w", err)
	}
	return nil
}

// Clear empties the ledger. It cannot be undone.
func (l *Ledger) Clear(ctx context.Context) error {
	if err := l.store.Remove(ctx, storage.KeyBills); err != nil {
		return fmt.Errorf("failed to clear bills: %w", err)
	}
	return nil
}

// Summary counts the bills and sums their totals.
func (l *Ledger) Summary(ctx context.Context) (Summary, error) {
	bills, err := l.History(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Bills: len(bills), Revenue: calculator.Revenue(bills)}, nil
}
