package metrics

import "time"

type NullMetricsProvider struct{}

func (n NullMetricsProvider) Gauge(_ string, _ float64, _ map[string]string) {}

func (n NullMetricsProvider) Count(_ string, _ int64, _ map[string]string) {}

func (n NullMetricsProvider) Timing(_ string, _ time.Duration, _ map[string]string) {}

func (n NullMetricsProvider) Incr(_ string, _ map[string]string) {}
