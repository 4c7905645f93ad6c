package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/storage"
	"github.com/mmynk/kiranakart/internal/storage/memory"
)

func bill(n int, total string) models.Bill {
	return models.Bill{
		ID:        fmt.Sprintf("bill_%d", n),
		Timestamp: time.UnixMilli(int64(n)).UTC(),
		Lines: []models.BillLine{
			{Name: "Rice", Quantity: 1, UnitPrice: decimal.NewNullDecimal(decimal.RequireFromString(total)), LineTotal: decimal.RequireFromString(total)},
		},
		Total: decimal.RequireFromString(total),
	}
}

func TestLedger(t *testing.T) {
	ctx := context.Background()
	l := New(memory.New())

	empty, err := l.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i, total := range []string{"250", "40.5", "9.5"} {
		require.NoError(t, l.Append(ctx, bill(i+1, total)))
	}

	t.Run("List is most recent first", func(t *testing.T) {
		bills, err := l.List(ctx)
		require.NoError(t, err)
		require.Len(t, bills, 3)
		assert.Equal(t, []string{"bill_3", "bill_2", "bill_1"}, []string{bills[0].ID, bills[1].ID, bills[2].ID})
	})

	t.Run("History is insertion order", func(t *testing.T) {
		bills, err := l.History(ctx)
		require.NoError(t, err)
		assert.Equal(t, "bill_1", bills[0].ID)
	})

	t.Run("Get", func(t *testing.T) {
		got, err := l.Get(ctx, "bill_2")
		require.NoError(t, err)
		assert.True(t, got.Total.Equal(decimal.RequireFromString("40.5")))

		_, err = l.Get(ctx, "bill_404")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Summary", func(t *testing.T) {
		s, err := l.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, s.Bills)
		assert.True(t, s.Revenue.Equal(decimal.NewFromInt(300)), "got %s", s.Revenue)
	})

	t.Run("Clear empties the ledger", func(t *testing.T) {
		require.NoError(t, l.Clear(ctx))
		bills, err := l.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, bills)

		// Clearing twice is fine.
		require.NoError(t, l.Clear(ctx))
	})
}

func TestLedger_PersistedShape(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	l := New(store)

	require.NoError(t, l.Append(ctx, bill(1700000000000, "250")))

	raw, ok, err := store.Get(ctx, storage.KeyBills)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{
		"id": "bill_1700000000000",
		"timestamp": "2023-11-14T22:13:20Z",
		"items": [{"name": "Rice", "quantity": 1, "unitPrice": 250, "total": 250}],
		"total": 250
	}]`, string(raw))
	assert.Contains(t, string(raw), `"total":250`)
}

func TestLedger_StorageFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	store := memory.New(memory.WithFailures(func(op, key string) error {
		if op == "remove" {
			return boom
		}
		return nil
	}))
	l := New(store)
	require.NoError(t, l.Append(ctx, bill(1, "10")))

	err := l.Clear(ctx)
	require.ErrorIs(t, err, boom)

	bills, err := l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}
