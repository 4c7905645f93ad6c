// Package catalog implements the shop's item inventory.
//
// Every mutation is a read-modify-write of the full item collection stored
// under storage.KeyItems. Nothing is cached between calls, so each operation
// starts from the authoritative persisted list.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/storage"
)

// Catalog exclusively owns the set of items.
type Catalog struct {
	store storage.Store
	newID func() string
}

// New creates a Catalog persisting through store.
func New(store storage.Store) *Catalog {
	return &Catalog{
		store: store,
		newID: uuid.NewString,
	}
}

// List returns every item in insertion order.
func (c *Catalog) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if _, err := storage.GetJSON(ctx, c.store, storage.KeyItems, &items); err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// Get returns the item with the given ID.
func (c *Catalog) Get(ctx context.Context, id string) (models.Item, error) {
	items, err := c.List(ctx)
	if err != nil {
		return models.Item{}, err
	}
	if i := indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return models.Item{}, &models.NotFoundError{Kind: "item", ID: id}
}

// Create validates draft, assigns a fresh ID and appends the item.
// On a validation error the catalog is left unchanged.
func (c *Catalog) Create(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	draft, err := validateDraft(draft)
	if err != nil {
		return models.Item{}, err
	}

	items, err := c.List(ctx)
	if err != nil {
		return models.Item{}, err
	}

	item := fromDraft(c.uniqueID(items), draft)
	if err := c.save(ctx, append(items, item)); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// Update replaces the item with the given ID, keeping its ID and position.
func (c *Catalog) Update(ctx context.Context, id string, draft models.ItemDraft) (models.Item, error) {
	draft, err := validateDraft(draft)
	if err != nil {
		return models.Item{}, err
	}

	items, err := c.List(ctx)
	if err != nil {
		return models.Item{}, err
	}

	i := indexOf(items, id)
	if i < 0 {
		return models.Item{}, &models.NotFoundError{Kind: "item", ID: id}
	}

	items[i] = fromDraft(id, draft)
	if err := c.save(ctx, items); err != nil {
		return models.Item{}, err
	}
	return items[i], nil
}

// Delete removes the item with the given ID. Deleting an unknown ID succeeds
// and leaves the catalog unchanged.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}

	i := indexOf(items, id)
	if i < 0 {
		return nil
	}
	return c.save(ctx, append(items[:i], items[i+1:]...))
}

// FindLowStock returns the items whose stock is below threshold, in catalog order.
func (c *Catalog) FindLowStock(ctx context.Context, threshold int) ([]models.Item, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return LowStock(items, threshold), nil
}

// DecrementStock re-reads the catalog and subtracts sold quantities.
func (c *Catalog) DecrementStock(ctx context.Context, sold map[string]int) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, ApplySale(items, sold))
}

// LowStock filters items to those with stock < threshold, preserving order.
func LowStock(items []models.Item, threshold int) []models.Item {
	low := []models.Item{}
	for _, item := range items {
		if item.Stock < threshold {
			low = append(low, item)
		}
	}
	return low
}

// ApplySale returns items with each sold quantity subtracted from the
// matching item's stock, floored at zero. Items not in sold are unchanged and
// sold IDs that no longer exist are ignored.
func ApplySale(items []models.Item, sold map[string]int) []models.Item {
	out := make([]models.Item, len(items))
	for i, item := range items {
		if qty, ok := sold[item.ID]; ok {
			item.Stock = max(0, item.Stock-qty)
		}
		out[i] = item
	}
	return out
}

func (c *Catalog) save(ctx context.Context, items []models.Item) error {
	if err := storage.SetJSON(ctx, c.store, storage.KeyItems, items); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// uniqueID draws IDs until one is not already taken.
func (c *Catalog) uniqueID(items []models.Item) string {
	for {
		id := c.newID()
		if indexOf(items, id) < 0 {
			return id
		}
	}
}

func indexOf(items []models.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func fromDraft(id string, d models.ItemDraft) models.Item {
	return models.Item{
		ID:       id,
		Name:     d.Name,
		Stock:    d.Stock,
		Unit:     d.Unit,
		Category: d.Category,
		Price:    d.Price,
	}
}
