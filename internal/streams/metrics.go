package streams

import (
	"elb-log-reports/internal/shared/metrics"
)

var (
	// metricFetchWaitSeconds is how long the consumer blocked waiting for the next object in order.
	metricFetchWaitSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "fetch_wait_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
