package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kiranakart/internal/models"
)

func TestParseForm(t *testing.T) {
	valid := models.ItemForm{Name: "Rice", Stock: "20", Unit: "kg", Category: "Grains", Price: "50"}

	tests := []struct {
		name       string
		mutate     func(f *models.ItemForm)
		wantFields map[string]string
	}{
		{name: "valid form", mutate: func(f *models.ItemForm) {}},
		{name: "price optional", mutate: func(f *models.ItemForm) { f.Price = "  " }},
		{name: "stock missing", mutate: func(f *models.ItemForm) { f.Stock = "" },
			wantFields: map[string]string{"stock": msgStockRequired}},
		{name: "stock not a number", mutate: func(f *models.ItemForm) { f.Stock = "ten" },
			wantFields: map[string]string{"stock": msgStockNumber}},
		{name: "stock too large", mutate: func(f *models.ItemForm) { f.Stock = "2147483647" },
			wantFields: map[string]string{"stock": msgStockTooLarge}},
		{name: "stock fractional", mutate: func(f *models.ItemForm) { f.Stock = "2.5" },
			wantFields: map[string]string{"stock": msgStockWhole}},
		{name: "stock zero is rejected not clamped", mutate: func(f *models.ItemForm) { f.Stock = "0" },
			wantFields: map[string]string{"stock": msgStockPositive}},
		{name: "stock negative", mutate: func(f *models.ItemForm) { f.Stock = "-3" },
			wantFields: map[string]string{"stock": msgStockPositive}},
		{name: "price not a number", mutate: func(f *models.ItemForm) { f.Price = "abc" },
			wantFields: map[string]string{"price": msgPriceNumber}},
		{name: "price negative", mutate: func(f *models.ItemForm) { f.Price = "-1" },
			wantFields: map[string]string{"price": msgPriceNegative}},
		{
			name: "every field reported together",
			mutate: func(f *models.ItemForm) {
				f.Name = "x"
				f.Stock = "1.5"
				f.Unit = ""
			},
			wantFields: map[string]string{"name": msgName, "stock": msgStockWhole, "unit": msgUnit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			draft, err := ParseForm(form)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "Rice", draft.Name)
				assert.Equal(t, 20, draft.Stock)
				return
			}

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestParseForm_Price(t *testing.T) {
	draft, err := ParseForm(models.ItemForm{Name: "Ghee", Stock: "4", Unit: "jar", Price: "449.50"})
	require.NoError(t, err)
	require.True(t, draft.Price.Valid)
	assert.True(t, draft.Price.Decimal.Equal(decimal.RequireFromString("449.5")))

	draft, err = ParseForm(models.ItemForm{Name: "Ghee", Stock: "4", Unit: "jar"})
	require.NoError(t, err)
	assert.False(t, draft.Price.Valid)
}
