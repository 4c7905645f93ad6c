package models

import "github.com/shopspring/decimal"

// Item represents a single stock-keeping unit in the catalog.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// Name is the display name (e.g., "Rice", "Toor Dal").
	Name string `json:"name"`

	// Stock is the quantity on hand. Never negative.
	Stock int `json:"stock"`

	// Unit is the free-text unit the stock is counted in (e.g., "kg", "packet").
	Unit string `json:"unit"`

	// Category groups items on the inventory screen. May be empty.
	Category string `json:"category"`

	// Price is the price per unit. Invalid (null) when the item is not
	// individually priced.
	Price decimal.NullDecimal `json:"price"`
}

// ItemDraft is the typed input for creating or replacing an item.
type ItemDraft struct {
	Name     string
	Stock    int
	Unit     string
	Category string
	Price    decimal.NullDecimal
}

// ItemForm is the raw text a shopkeeper types into the add/edit item form.
type ItemForm struct {
	Name     string `json:"name"`
	Stock    string `json:"stock"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

// FinalizedLine is one positive-quantity cart line, numbered in selection order.
type FinalizedLine struct {
	// Seq is the 1-based position of the line on the bill.
	Seq int `json:"seq"`

	// ItemID references the catalog item whose stock the line decrements.
	ItemID string `json:"itemId"`

	Name      string              `json:"name"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unitPrice"`

	// LineTotal is Quantity × UnitPrice, zero when the item has no price.
	LineTotal decimal.Decimal `json:"lineTotal"`
}
