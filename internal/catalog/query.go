package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/kiranakart/internal/models"
)

// SortBy selects the ordering of a query result.
type SortBy string

const (
	SortNone  SortBy = ""
	SortName  SortBy = "name"
	SortStock SortBy = "stock"
)

// Filter narrows and orders the inventory listing.
type Filter struct {
	// Search matches item names case-insensitively by substring.
	Search string

	// Category keeps only items in exactly this category when non-empty.
	Category string

	SortBy SortBy
}

// Query returns the items matching f.
func (c *Catalog) Query(ctx context.Context, f Filter) ([]models.Item, error) {
	switch f.SortBy {
	case SortNone, SortName, SortStock:
	default:
		verr := &models.ValidationError{}
		verr.Add("sortBy", fmt.Sprintf("unknown sort order %q", f.SortBy))
		return nil, verr
	}

	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(items, f), nil
}

// Categories returns the distinct non-empty categories in first-seen order.
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories, nil
}

// Apply filters and sorts items without touching storage.
func Apply(items []models.Item, f Filter) []models.Item {
	needle := strings.ToLower(f.Search)
	out := []models.Item{}
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		out = append(out, item)
	}

	switch f.SortBy {
	case SortName:
		// Collator is not safe for concurrent use; build one per call.
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortStock:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Stock < out[j].Stock
		})
	}
	return out
}
