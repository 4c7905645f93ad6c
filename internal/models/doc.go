// Package models defines the core domain models for KiranaKart.
//
// # Models
//
//   - Item: one stock-keeping unit in the shop's inventory
//   - FinalizedLine: a validated cart line ready for billing
//   - Bill / BillLine: an immutable record of a completed sale
//   - Preferences: theme, font scale and the low-stock threshold
//   - UserProfile: the shopkeeper and shop details printed on receipts
//
// # Design Principles
//
// 1. **Plain values**: models carry no behaviour beyond small helpers
// 2. **Stable JSON**: field names match the keys already written by the mobile app
// 3. **Decimal money**: prices and totals use shopspring/decimal, never float64
// 4. **IDs over pointers**: carts and bills reference items by ID
package models

import "github.com/shopspring/decimal"

func init() {
	// Money is persisted as JSON numbers, the way the mobile app wrote it.
	// Decoding accepts both numbers and quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
