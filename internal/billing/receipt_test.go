package billing

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kiranakart/internal/models"
)

func TestWriteReceipt(t *testing.T) {
	bill := models.Bill{
		ID:        "bill_1700000000000",
		Timestamp: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
		Lines: []models.BillLine{
			{Name: "Rice", Quantity: 5, UnitPrice: decimal.NewNullDecimal(decimal.NewFromInt(50)), LineTotal: decimal.NewFromInt(250)},
			{Name: "Calendar", Quantity: 1, LineTotal: decimal.Zero},
		},
		Total: decimal.NewFromInt(250),
	}
	profile := &models.UserProfile{Name: "Asha", Shop: "Asha Stores", Address: "12 Market Road", Phone: "9876543210"}

	var b strings.Builder
	require.NoError(t, WriteReceipt(&b, bill, profile))
	out := b.String()

	assert.Contains(t, out, "ASHA STORES")
	assert.Contains(t, out, "12 Market Road")
	assert.Contains(t, out, "Phone: 9876543210")
	assert.Contains(t, out, "Invoice: INV-1700000000000")
	assert.Contains(t, out, "Date: 14 Nov 2023, 22:13")
	assert.Contains(t, out, "250.00")
	assert.Contains(t, out, "50.00")

	lines := strings.Split(out, "\n")
	var calendarRow string
	for _, l := range lines {
		if strings.Contains(l, "Calendar") {
			calendarRow = l
		}
	}
	require.NotEmpty(t, calendarRow)
	assert.Contains(t, calendarRow, " - ")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(calendarRow), "2"))
}

func TestWriteReceipt_WithoutProfile(t *testing.T) {
	bill := models.Bill{ID: "bill_1", Timestamp: time.Unix(0, 0).UTC(), Total: decimal.Zero}

	var b strings.Builder
	require.NoError(t, WriteReceipt(&b, bill, nil))
	assert.True(t, strings.HasPrefix(b.String(), "Invoice: INV-1\n"))
}
