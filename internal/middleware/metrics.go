package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/kiranakart/internal/metrics"
)

// MetricsInterceptor counts every RPC by procedure and result code and
// observes its latency.
func MetricsInterceptor(rec *metrics.Recorder) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			rec.RPC(req.Spec().Procedure, codeOf(err), time.Since(start))
			return resp, err
		}
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
