// Package metrics defines the Prometheus collectors for the shop.
//
// A nil *Recorder is valid and records nothing, so components can take an
// optional recorder without guarding every call.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/kiranakart/internal/models"
)

const namespace = "kiranakart"

// Recorder groups every collector the service exports.
type Recorder struct {
	billsCommitted prometheus.Counter
	revenue        prometheus.Counter
	unitsSold      prometheus.Counter
	commitFailures *prometheus.CounterVec
	rpcRequests    *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		billsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_committed_total",
			Help:      "Bills appended to the sales ledger.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Sum of committed bill totals.",
		}),
		unitsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_sold_total",
			Help:      "Item units decremented from stock by committed bills.",
		}),
		commitFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bill_commit_failures_total",
			Help:      "Bill commits that failed, by the stage that failed.",
		}, []string{"stage"}),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}

	reg.MustRegister(
		r.billsCommitted,
		r.revenue,
		r.unitsSold,
		r.commitFailures,
		r.rpcRequests,
		r.rpcDuration,
	)
	return r
}

// BillCommitted records a successful commit.
func (r *Recorder) BillCommitted(bill models.Bill) {
	if r == nil {
		return
	}
	r.billsCommitted.Inc()
	r.revenue.Add(bill.Total.InexactFloat64())

	units := 0
	for _, line := range bill.Lines {
		units += line.Quantity
	}
	r.unitsSold.Add(float64(units))
}

// CommitFailed records a failed commit at stage.
func (r *Recorder) CommitFailed(stage string) {
	if r == nil {
		return
	}
	r.commitFailures.WithLabelValues(stage).Inc()
}

// RPC records one handled RPC.
func (r *Recorder) RPC(procedure, code string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.rpcRequests.WithLabelValues(procedure, code).Inc()
	r.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}
