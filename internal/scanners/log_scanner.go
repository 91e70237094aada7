package scanners

import (
	"bytes"
	"context"
	"errors"
	"iter"

	"elb-log-reports/internal/models"
	"elb-log-reports/internal/objectsources"
	"elb-log-reports/internal/parsers"
	"elb-log-reports/internal/shared/loggers"
	"elb-log-reports/internal/shared/svcerrors"
	"elb-log-reports/internal/streams"
)

// LogScanner walks the day partitions of a time range and yields every parsed record in
// canonical order: days ascending, objects in listing order, lines in file order.
//
// A yielded error wrapping *parsers.ParseError concerns a single line and the sequence goes on.
// Any other error ends the sequence. Stopping the range loop early stops all listing and
// fetching.
//
//go:generate mockgen -source=log_scanner.go -destination=./mocks/log_scanner_mock.go -package=mocks
type LogScanner interface {
	Records(ctx context.Context, tr models.TimeRange) iter.Seq2[*models.LogRecord, error]
}

type Options struct {
	// SkipUnreadableObjects logs and skips objects that cannot be read or decompressed
	// instead of failing the run.
	SkipUnreadableObjects bool
}

type logScanner struct {
	source  objectsources.ObjectSource
	fetcher streams.OrderedFetcher
	parser  parsers.RecordParser
	opts    Options
}

func NewLogScanner(source objectsources.ObjectSource, fetcher streams.OrderedFetcher, parser parsers.RecordParser, opts Options) LogScanner {
	return &logScanner{
		source:  source,
		fetcher: fetcher,
		parser:  parser,
		opts:    opts,
	}
}

func (s *logScanner) Records(ctx context.Context, tr models.TimeRange) iter.Seq2[*models.LogRecord, error] {
	return func(yield func(*models.LogRecord, error) bool) {
		for _, day := range tr.Days() {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			keys, err := s.source.DayObjects(ctx, day)
			if err != nil {
				yield(nil, err)
				return
			}
			loggers.Ctx(ctx).Debug().
				Str(loggers.FieldDayKey, day.Format(models.DateLayout)).
				Int("objects", len(keys)).
				Msg("scanning day partition")

			for result := range s.fetcher.Fetch(ctx, keys) {
				if result.Err != nil {
					if s.skippable(result.Err) {
						s.logSkippedObject(ctx, result)
						continue
					}
					yield(nil, result.Err)
					return
				}
				if !s.scanObject(result.Key, result.Data, yield) {
					return
				}
			}
		}
	}
}

// scanObject yields the records of one object. It returns false once the consumer stops.
func (s *logScanner) scanObject(key string, data []byte, yield func(*models.LogRecord, error) bool) bool {
	lineNumber := 0
	for raw := range bytes.Lines(data) {
		lineNumber++
		line := string(bytes.TrimRight(raw, "\r\n"))
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}

		record, err := s.parser.Parse(line)
		if err != nil {
			if parseErr, ok := parsers.AsParseError(err); ok {
				metricParseLinesTotal.WithLabelValues(string(parseErr.Kind)).Inc()
			}
			if !yield(nil, &LineError{ObjectKey: key, LineNumber: lineNumber, Err: err}) {
				return false
			}
			continue
		}

		metricParseLinesTotal.WithLabelValues(resultParsed).Inc()
		if !yield(record, nil) {
			return false
		}
	}
	return true
}

func (s *logScanner) skippable(err error) bool {
	if !s.opts.SkipUnreadableObjects {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (s *logScanner) logSkippedObject(ctx context.Context, result streams.FetchResult) {
	errorCode := ""
	if svcErr, ok := svcerrors.AsServiceError(result.Err); ok {
		errorCode = svcErr.Code
	}
	metricObjectsSkippedTotal.WithLabelValues(errorCode).Inc()

	loggers.Ctx(ctx).Warn().
		Err(result.Err).
		Str(loggers.FieldObjectKey, result.Key).
		Str(loggers.FieldErrorCode, errorCode).
		Msg("skipping unreadable log object")
}
