package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/mmynk/kiranakart/internal/models"
)

const minNameLength = 2

// Field messages, worded as the add-item form shows them.
const (
	msgName          = "Item name must be at least 2 characters long"
	msgStockRequired = "Quantity is required"
	msgStockNumber   = "Quantity must be a number"
	msgStockWhole    = "Quantity must be a whole number"
	msgStockPositive = "Quantity must be greater than 0"
	msgStockTooLarge = "Quantity is too large"
	msgUnit          = "Unit is required"
	msgPriceNumber   = "Price must be a number"
	msgPriceNegative = "Price cannot be negative"
)

// validateDraft checks the create/update rules and returns the draft with
// surrounding whitespace trimmed from its text fields.
func validateDraft(d models.ItemDraft) (models.ItemDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Unit = strings.TrimSpace(d.Unit)
	d.Category = strings.TrimSpace(d.Category)

	verr := &models.ValidationError{}
	if utf8.RuneCountInString(d.Name) < minNameLength {
		verr.Add("name", msgName)
	}
	if d.Stock <= 0 {
		verr.Add("stock", msgStockPositive)
	}
	if d.Unit == "" {
		verr.Add("unit", msgUnit)
	}
	if d.Price.Valid && d.Price.Decimal.IsNegative() {
		verr.Add("price", msgPriceNegative)
	}
	return d, verr.OrNil()
}

// ParseForm converts the raw text of the item form into a draft. Every field
// problem is reported at once in a *models.ValidationError.
func ParseForm(form models.ItemForm) (models.ItemDraft, error) {
	verr := &models.ValidationError{}
	draft := models.ItemDraft{
		Name:     form.Name,
		Unit:     form.Unit,
		Category: form.Category,
	}

	stock, msg := parseStock(form.Stock)
	if msg != "" {
		verr.Add("stock", msg)
	}
	draft.Stock = stock

	if raw := strings.TrimSpace(form.Price); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			verr.Add("price", msgPriceNumber)
		} else {
			draft.Price = decimal.NewNullDecimal(p)
		}
	}

	// Run the typed rules too so name/unit/price messages come out together
	// with the stock parse errors.
	var typed *models.ValidationError
	if _, err := validateDraft(draft); errors.As(err, &typed) {
		for field, m := range typed.Fields {
			verr.Add(field, m)
		}
	}

	if err := verr.OrNil(); err != nil {
		return models.ItemDraft{}, err
	}
	return draft, nil
}

// parseStock applies the quantity field rules in order. A rejected value is
// never clamped.
func parseStock(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, msgStockRequired
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, msgStockNumber
	}
	if f != math.Trunc(f) {
		return 0, msgStockWhole
	}
	if f >= math.MaxInt32 {
		return 0, msgStockTooLarge
	}
	if f <= 0 {
		return 0, msgStockPositive
	}
	return int(f), ""
}
