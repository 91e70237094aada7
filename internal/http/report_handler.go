package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"elb-log-reports/internal/reports"
	"elb-log-reports/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type reportHandler struct {
	reportService reports.ReportService
	now           func() time.Time
}

func NewReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &reportHandler{
		reportService: reportService,
		now:           time.Now,
	}
}

// Handle processes GET /reports/{kind} and streams the report as plain text, one row per line.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	params, err := reportParams(r)
	if err != nil {
		return err
	}
	req, err := reports.NewReportRequest(params, h.now())
	if err != nil {
		return err
	}

	w.Header().Set(headerContentType, contentTypeText)
	body := &bodyWriter{w: w}
	outcome, err := h.reportService.Run(r.Context(), req, body)
	if err != nil {
		if !body.started {
			return err
		}
		// Status and part of the body are already on the wire; the client sees a short report.
		loggers.Ctx(r.Context()).Error().
			Err(err).
			Msg("report failed after streaming started")
		return nil
	}

	if !body.started {
		w.WriteHeader(http.StatusOK)
	}
	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldReport, string(req.Kind)).
		Int("emitted", outcome.Emitted).
		Msg("report served")
	return nil
}

func reportParams(r *http.Request) (reports.RequestParams, error) {
	query := r.URL.Query()
	params := reports.RequestParams{
		Report: chi.URLParam(r, urlParamKind),
		From:   query.Get(queryFrom),
		To:     query.Get(queryTo),
		For:    query.Get(queryFor),
	}

	var err error
	if params.Code, err = optionalInt(query.Get(queryCode), queryCode); err != nil {
		return params, err
	}
	if params.Max, err = optionalInt(query.Get(queryMax), queryMax); err != nil {
		return params, err
	}
	return params, nil
}

func optionalInt(raw, name string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errInvalidQueryParam(name, raw, err)
	}
	return &v, nil
}

// bodyWriter records whether any report bytes reached the client.
type bodyWriter struct {
	w       http.ResponseWriter
	started bool
}

func (b *bodyWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		b.started = true
	}
	return b.w.Write(p)
}
