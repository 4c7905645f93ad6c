// Package billing turns a finalized cart into a bill and records the sale.
package billing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/kiranakart/internal/calculator"
	"github.com/mmynk/kiranakart/internal/cart"
	"github.com/mmynk/kiranakart/internal/catalog"
	"github.com/mmynk/kiranakart/internal/ledger"
	"github.com/mmynk/kiranakart/internal/metrics"
	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/storage"
)

// Commit stages, used in CommitError and as the metrics label.
const (
	StageBatch   = "batch"
	StageLedger  = "ledger"
	StageCatalog = "catalog"
)

// CommitError reports which side effect of Commit failed.
//
// With StageCatalog the bill is already in the ledger but stock was not
// decremented; nothing is rolled back and the caller must reconcile.
type CommitError struct {
	Stage  string
	BillID string
	Err    error
}

func (e *CommitError) Error() string {
	if e.Stage == StageCatalog {
		return fmt.Sprintf("bill %s recorded but stock not updated: %v", e.BillID, e.Err)
	}
	return fmt.Sprintf("failed to commit bill %s (%s): %v", e.BillID, e.Stage, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Engine generates bills and applies them to the ledger and catalog.
type Engine struct {
	store   storage.Store
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	metrics *metrics.Recorder
	now     func() time.Time

	mu         sync.Mutex
	lastMillis int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for bill IDs and timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithMetrics records commits on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = r }
}

// New creates an Engine. store must be the store cat and led persist to; it
// is checked for storage.Batcher to decide whether commits are atomic.
func New(store storage.Store, cat *catalog.Catalog, led *ledger.Ledger, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		catalog: cat,
		ledger:  led,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateBill builds the bill for lines. It has no side effects.
func (e *Engine) GenerateBill(lines []models.FinalizedLine) (models.Bill, error) {
	if len(lines) == 0 {
		return models.Bill{}, models.ErrEmptyCart
	}

	now := e.now()
	billLines := make([]models.BillLine, len(lines))
	for i, line := range lines {
		billLines[i] = models.BillLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		}
	}

	return models.Bill{
		ID:        fmt.Sprintf("bill_%d", e.nextMillis(now)),
		Timestamp: now.UTC(),
		Lines:     billLines,
		Total:     calculator.BillTotal(lines),
	}, nil
}

// nextMillis returns now in Unix milliseconds, bumped past the previous
// value so two bills in the same millisecond still get distinct IDs.
func (e *Engine) nextMillis(now time.Time) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= e.lastMillis {
		ms = e.lastMillis + 1
	}
	e.lastMillis = ms
	return ms
}

// Commit appends bill to the ledger and decrements stock for every line,
// flooring at zero. The catalog is re-read right before the decrement.
//
// When the store supports batches both writes land in one transaction.
// Otherwise the ledger is written first and a catalog failure leaves the bill
// recorded with stock unchanged (CommitError with StageCatalog).
func (e *Engine) Commit(ctx context.Context, bill models.Bill, lines []models.FinalizedLine) error {
	sold := soldQuantities(lines)

	var err error
	if batcher, ok := e.store.(storage.Batcher); ok {
		err = e.commitBatch(ctx, batcher, bill, sold)
	} else {
		err = e.commitSequential(ctx, bill, sold)
	}
	if err != nil {
		return err
	}

	e.metrics.BillCommitted(bill)
	return nil
}

func (e *Engine) commitBatch(ctx context.Context, batcher storage.Batcher, bill models.Bill, sold map[string]int) error {
	fail := func(err error) error {
		e.metrics.CommitFailed(StageBatch)
		return &CommitError{Stage: StageBatch, BillID: bill.ID, Err: err}
	}

	bills, err := e.ledger.History(ctx)
	if err != nil {
		return fail(err)
	}
	items, err := e.catalog.List(ctx)
	if err != nil {
		return fail(err)
	}

	var batch storage.Batch
	if err := batch.Put(storage.KeyBills, append(bills, bill)); err != nil {
		return fail(err)
	}
	if err := batch.Put(storage.KeyItems, catalog.ApplySale(items, sold)); err != nil {
		return fail(err)
	}
	if err := batcher.Apply(ctx, batch); err != nil {
		return fail(err)
	}
	return nil
}

func (e *Engine) commitSequential(ctx context.Context, bill models.Bill, sold map[string]int) error {
	if err := e.ledger.Append(ctx, bill); err != nil {
		e.metrics.CommitFailed(StageLedger)
		return &CommitError{Stage: StageLedger, BillID: bill.ID, Err: err}
	}

	if err := e.catalog.DecrementStock(ctx, sold); err != nil {
		slog.Warn("Bill recorded but stock decrement failed",
			"bill_id", bill.ID,
			"error", err,
		)
		e.metrics.CommitFailed(StageCatalog)
		return &CommitError{Stage: StageCatalog, BillID: bill.ID, Err: err}
	}
	return nil
}

// Checkout finalizes session, generates the bill and commits it.
// If the commit fails after the bill was recorded the bill is returned
// together with the error.
func (e *Engine) Checkout(ctx context.Context, session *cart.Session) (models.Bill, error) {
	lines, err := session.Finalize()
	if err != nil {
		return models.Bill{}, err
	}

	bill, err := e.GenerateBill(lines)
	if err != nil {
		return models.Bill{}, err
	}

	if err := e.Commit(ctx, bill, lines); err != nil {
		return bill, err
	}
	return bill, nil
}

// soldQuantities totals the quantity per item across lines.
func soldQuantities(lines []models.FinalizedLine) map[string]int {
	sold := make(map[string]int, len(lines))
	for _, line := range lines {
		sold[line.ItemID] += line.Quantity
	}
	return sold
}
