package reports

import (
	"context"
	"iter"

	"elb-log-reports/internal/models"
	"elb-log-reports/internal/parsers"
	"elb-log-reports/internal/scanners"
	"elb-log-reports/internal/shared/loggers"
)

// State is where a run ended up.
type State string

const (
	StateRunning    State = "running"
	StateMaxReached State = "completed_max_reached"
	StateExhausted  State = "completed_exhausted"
)

// ReportLine is one emitted row.
type ReportLine struct {
	Record *models.LogRecord
	Text   string
}

// Outcome summarises a run. Emitted is the count compared against the request's Max.
type Outcome struct {
	State       State
	Emitted     int
	Parsed      int
	Skipped     int // lines that failed to parse
	OutOfWindow int
}

//go:generate mockgen -source=report_engine.go -destination=./mocks/report_engine_mock.go -package=mocks
type ReportEngine interface {
	// Process consumes records in the order given and calls emit for each report line.
	// It stops pulling from records as soon as Max lines have been emitted.
	Process(ctx context.Context, records iter.Seq2[*models.LogRecord, error], req *models.ReportRequest, emit func(ReportLine) error) (*Outcome, error)
}

type reportEngine struct{}

func NewReportEngine() ReportEngine {
	return &reportEngine{}
}

func (e *reportEngine) Process(ctx context.Context, records iter.Seq2[*models.LogRecord, error], req *models.ReportRequest, emit func(ReportLine) error) (*Outcome, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	predicate := predicates[req.Kind]
	format := formatters[req.Kind]
	report := string(req.Kind)

	outcome := &Outcome{State: StateRunning}
	if req.IsBounded() && req.Max == 0 {
		outcome.State = StateMaxReached
		return outcome, nil
	}

	logger := loggers.Ctx(ctx)
	for record, err := range records {
		if err != nil {
			parseErr, ok := parsers.AsParseError(err)
			if !ok {
				return outcome, err
			}
			outcome.Skipped++
			metricRecordsSkippedTotal.WithLabelValues(report, reasonParseError).Inc()
			event := logger.Warn().Err(err).Str(loggers.FieldParseError, string(parseErr.Kind))
			if lineErr, ok := scanners.AsLineError(err); ok {
				event = event.Str(loggers.FieldObjectKey, lineErr.ObjectKey).Int(loggers.FieldLineNumber, lineErr.LineNumber)
			}
			event.Msg("skipping unparsable line")
			continue
		}

		outcome.Parsed++
		if !req.Range.Contains(record.Timestamp) {
			outcome.OutOfWindow++
			metricRecordsSkippedTotal.WithLabelValues(report, reasonOutOfWindow).Inc()
			continue
		}
		if !predicate(record, req) {
			continue
		}

		if err := emit(ReportLine{Record: record, Text: format(record)}); err != nil {
			return outcome, errInternalOutputFailed(err)
		}
		outcome.Emitted++
		metricLinesEmittedTotal.WithLabelValues(report).Inc()

		if req.IsBounded() && outcome.Emitted >= req.Max {
			outcome.State = StateMaxReached
			return outcome, nil
		}
	}

	outcome.State = StateExhausted
	return outcome, nil
}
