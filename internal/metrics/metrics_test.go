package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/kiranakart/internal/models"
)

func TestRecorder(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.BillCommitted(models.Bill{
		ID:    "bill_1",
		Total: decimal.RequireFromString("262.5"),
		Lines: []models.BillLine{{Quantity: 5}, {Quantity: 2}},
	})
	r.CommitFailed("catalog")
	r.RPC("/kiranakart.v1.SalesService/Checkout", "ok", 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.billsCommitted))
	assert.Equal(t, 262.5, testutil.ToFloat64(r.revenue))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.unitsSold))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.commitFailures.WithLabelValues("catalog")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rpcRequests.WithLabelValues("/kiranakart.v1.SalesService/Checkout", "ok")))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.BillCommitted(models.Bill{})
		r.CommitFailed("ledger")
		r.RPC("p", "ok", time.Second)
	})
}
