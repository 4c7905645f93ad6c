// Package calculator holds the money arithmetic for carts and bills.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/kiranakart/internal/models"
)

// LineTotal computes quantity × unit price.
// An item without a price contributes zero: it still appears on the bill and
// still decrements stock, but adds nothing to the total.
func LineTotal(quantity int, unitPrice decimal.NullDecimal) decimal.Decimal {
	if !unitPrice.Valid || quantity <= 0 {
		return decimal.Zero
	}
	return unitPrice.Decimal.Mul(decimal.NewFromInt(int64(quantity)))
}

// BillTotal sums the line totals of finalized lines.
func BillTotal(lines []models.FinalizedLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return total
}

// Revenue sums the totals of a set of bills.
func Revenue(bills []models.Bill) decimal.Decimal {
	total := decimal.Zero
	for _, bill := range bills {
		total = total.Add(bill.Total)
	}
	return total
}
