package reports

import (
	"bufio"
	"context"
	"io"
	"time"

	"elb-log-reports/internal/models"
	"elb-log-reports/internal/scanners"
	"elb-log-reports/internal/shared/loggers"
	"elb-log-reports/internal/shared/metrics"
	"elb-log-reports/internal/shared/svcerrors"
	"elb-log-reports/internal/shared/ulid"
)

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Run scans the request's window and writes one line per report row to w.
	Run(ctx context.Context, req *models.ReportRequest, w io.Writer) (*Outcome, error)
}

type reportService struct {
	scanner scanners.LogScanner
	engine  ReportEngine
}

func NewReportService(scanner scanners.LogScanner, engine ReportEngine) ReportService {
	return &reportService{
		scanner: scanner,
		engine:  engine,
	}
}

func (s *reportService) Run(ctx context.Context, req *models.ReportRequest, w io.Writer) (*Outcome, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, ulid.NewULID()).
		Str(loggers.FieldReport, string(req.Kind)).
		Str(loggers.FieldTimeRange, req.Range.String()).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Int("max", req.Max).Msg("report run started")

	start := time.Now()
	out := bufio.NewWriter(w)
	outcome, err := s.engine.Process(ctx, s.scanner.Records(ctx, req.Range), req, func(line ReportLine) error {
		if _, err := out.WriteString(line.Text); err != nil {
			return err
		}
		return out.WriteByte('\n')
	})
	// Lines still buffered when the run fails are dropped, so a failure that happens before
	// the buffer first fills leaves w untouched and the caller can still report it cleanly.
	if err == nil {
		if flushErr := out.Flush(); flushErr != nil {
			err = errInternalOutputFailed(flushErr)
		}
	}
	elapsed := time.Since(start)
	metricRunDurationSeconds.WithLabelValues(string(req.Kind)).Observe(elapsed.Seconds())

	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = errInternalRunFailed(err)
		}
		state := StateRunning
		if outcome != nil {
			state = outcome.State
		}
		metricRunsTotal.WithLabelValues(string(req.Kind), string(state), svcErr.Code).Inc()
		logger.Error().
			Err(svcErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Dur(loggers.FieldDuration, elapsed).
			Msg("report run failed")
		return outcome, svcErr
	}

	metricRunsTotal.WithLabelValues(string(req.Kind), string(outcome.State), metrics.ValueNoError).Inc()
	logger.Info().
		Str("state", string(outcome.State)).
		Int("emitted", outcome.Emitted).
		Int("parsed", outcome.Parsed).
		Int("skipped", outcome.Skipped).
		Int("out_of_window", outcome.OutOfWindow).
		Dur(loggers.FieldDuration, elapsed).
		Msg("report run completed")
	return outcome, nil
}
