package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/kiranakart/internal/models"
)

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice decimal.NullDecimal
		want      string
	}{
		{name: "whole price", quantity: 5, unitPrice: price("50"), want: "250"},
		{name: "fractional price", quantity: 3, unitPrice: price("12.35"), want: "37.05"},
		{name: "zero quantity", quantity: 0, unitPrice: price("50"), want: "0"},
		{name: "missing price counts zero", quantity: 4, unitPrice: decimal.NullDecimal{}, want: "0"},
		{name: "free item", quantity: 2, unitPrice: price("0"), want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(tt.quantity, tt.unitPrice)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("LineTotal(%d, %v) = %s, want %s", tt.quantity, tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestBillTotal(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3; float64 would not be.
	lines := []models.FinalizedLine{
		{Seq: 1, LineTotal: decimal.RequireFromString("0.1")},
		{Seq: 2, LineTotal: decimal.RequireFromString("0.2")},
	}
	got := BillTotal(lines)
	if !got.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("BillTotal = %s, want 0.3", got)
	}

	if !BillTotal(nil).IsZero() {
		t.Errorf("BillTotal(nil) = %s, want 0", BillTotal(nil))
	}
}

func TestRevenue(t *testing.T) {
	bills := []models.Bill{
		{ID: "bill_1", Total: decimal.NewFromInt(250)},
		{ID: "bill_2", Total: decimal.RequireFromString("99.50")},
	}
	got := Revenue(bills)
	if !got.Equal(decimal.RequireFromString("349.5")) {
		t.Errorf("Revenue = %s, want 349.5", got)
	}
}
