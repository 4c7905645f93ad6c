package service

import (
	"github.com/mmynk/kiranakart/internal/ledger"
	"github.com/mmynk/kiranakart/internal/models"
)

// Empty is used for requests and responses without fields.
type Empty struct{}

type CreateItemRequest struct {
	Item models.ItemForm `json:"item"`
}

type UpdateItemRequest struct {
	ID   string          `json:"id"`
	Item models.ItemForm `json:"item"`
}

type ItemResponse struct {
	Item models.Item `json:"item"`
}

type DeleteItemRequest struct {
	ID string `json:"id"`
}

type ListItemsRequest struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	SortBy   string `json:"sortBy,omitempty"`
}

type ListItemsResponse struct {
	Items      []models.Item `json:"items"`
	Categories []string      `json:"categories"`

	// MinQuantity is the current low-stock threshold so clients can flag rows.
	MinQuantity int `json:"minQuantity"`
}

type LowStockRequest struct {
	// Threshold overrides the saved minimum quantity when positive.
	Threshold int `json:"threshold,omitempty"`
}

type LowStockResponse struct {
	Threshold int           `json:"threshold"`
	Items     []models.Item `json:"items"`
}

// CheckoutLine is one cart row as typed by the shopkeeper. Quantity is raw
// text and is sanitized the same way the cart screen does it.
type CheckoutLine struct {
	ItemID   string `json:"itemId"`
	Quantity string `json:"quantity"`
}

type CheckoutRequest struct {
	Lines []CheckoutLine `json:"lines"`
}

type CheckoutResponse struct {
	Bill models.Bill `json:"bill"`

	// Warnings lists every quantity that was clamped to the available stock.
	Warnings []models.OutOfStockWarning `json:"warnings,omitempty"`
}

type ListBillsResponse struct {
	Bills   []models.Bill  `json:"bills"`
	Summary ledger.Summary `json:"summary"`
}

type GetReceiptRequest struct {
	BillID string `json:"billId"`
}

type GetReceiptResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Text          string `json:"text"`
}

type ProfileResponse struct {
	Profile models.UserProfile `json:"profile"`
}

type PreferencesResponse struct {
	Preferences models.Preferences `json:"preferences"`
}

// UpdatePreferencesRequest changes only the fields that are set.
type UpdatePreferencesRequest struct {
	Theme       *models.Theme     `json:"theme,omitempty"`
	FontScale   *models.FontScale `json:"fontScale,omitempty"`
	MinQuantity *int              `json:"minQuantity,omitempty"`
}
