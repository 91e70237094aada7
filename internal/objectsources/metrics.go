package objectsources

import (
	"elb-log-reports/internal/shared/metrics"
)

var (
	metricObjectsFetchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "objects_fetched_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBytesDecompressedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "bytes_decompressed_total",
		},
		[]string{},
	)
)
