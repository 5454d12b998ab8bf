package metrics

import (
	"context"

	"github.com/artie-labs/tablemeta/lib/telemetry/metrics/base"
)

type contextKey string

const metricsClientKey contextKey = "_mck"

func InjectMetricsClientIntoCtx(ctx context.Context, metricsClient base.Client) context.Context {
	return context.WithValue(ctx, metricsClientKey, metricsClient)
}

// FromContext returns the client carried by [ctx], metrics are dropped if there isn't one.
func FromContext(ctx context.Context) base.Client {
	metricsClientVal := ctx.Value(metricsClientKey)
	if metricsClientVal == nil {
		return NullMetricsProvider{}
	}

	metricsClient, isOk := metricsClientVal.(base.Client)
	if !isOk {
		return NullMetricsProvider{}
	}

	return metricsClient
}
