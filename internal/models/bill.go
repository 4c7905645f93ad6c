package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is an immutable record of a completed sale.
// The JSON layout matches the bill collection the mobile app persists.
type Bill struct {
	// ID is derived from the creation time ("bill_<unix-millis>").
	ID string `json:"id"`

	// Timestamp is when the bill was generated.
	Timestamp time.Time `json:"timestamp"`

	// Lines are the sold items in bill order.
	Lines []BillLine `json:"items"`

	// Total is the exact sum of every line total.
	Total decimal.Decimal `json:"total"`
}

// BillLine is a single row on a bill.
type BillLine struct {
	Name      string              `json:"name"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unitPrice"`
	LineTotal decimal.Decimal     `json:"total"`
}
