package middleware

import (
	"context"
	"errors"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kiranakart/internal/metrics"
)

type ping struct{}

func call(t *testing.T, interceptor connect.UnaryInterceptorFunc, procedure string, result error) error {
	t.Helper()
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if result != nil {
			return nil, result
		}
		return connect.NewResponse(&ping{}), nil
	}
	req := connect.NewRequest(&ping{})
	// Spec is only populated by a real handler.
	_, err := interceptor(next)(context.Background(), withProcedure{req, procedure})
	return err
}

type withProcedure struct {
	*connect.Request[ping]
	procedure string
}

func (w withProcedure) Spec() connect.Spec {
	return connect.Spec{Procedure: w.procedure, StreamType: connect.StreamTypeUnary}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	interceptor := MetricsInterceptor(metrics.New(reg))

	require.NoError(t, call(t, interceptor, "/kiranakart.v1.SalesService/Checkout", nil))
	require.NoError(t, call(t, interceptor, "/kiranakart.v1.SalesService/Checkout", nil))
	err := call(t, interceptor, "/kiranakart.v1.SalesService/Checkout",
		connect.NewError(connect.CodeFailedPrecondition, errors.New("cart is empty")))
	require.Error(t, err)

	expected := `
# HELP kiranakart_rpc_requests_total RPCs handled, by procedure and result code.
# TYPE kiranakart_rpc_requests_total counter
kiranakart_rpc_requests_total{code="failed_precondition",procedure="/kiranakart.v1.SalesService/Checkout"} 1
kiranakart_rpc_requests_total{code="ok",procedure="/kiranakart.v1.SalesService/Checkout"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "kiranakart_rpc_requests_total"))
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	want := connect.NewError(connect.CodeNotFound, errors.New("item missing"))
	err := call(t, LoggingInterceptor(), "/kiranakart.v1.InventoryService/UpdateItem", want)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	assert.NoError(t, call(t, LoggingInterceptor(), "/kiranakart.v1.InventoryService/ListItems", nil))
}

func TestMetricsInterceptor_NilRecorder(t *testing.T) {
	assert.NoError(t, call(t, MetricsInterceptor(nil), "/kiranakart.v1.AccountService/GetProfile", nil))
}
