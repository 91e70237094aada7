package scanners

import (
	"elb-log-reports/internal/shared/metrics"
)

const (
	resultParsed = "parsed"
)

var (
	// metricParseLinesTotal counts non-blank lines by outcome: "parsed" or the parse error kind.
	metricParseLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParse,
			Name:      "lines_total",
		},
		[]string{"result"},
	)

	metricObjectsSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "objects_skipped_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
