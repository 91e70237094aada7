package http

import (
	"net/http"

	"elb-log-reports/internal/reports"
	"elb-log-reports/internal/shared/loggers"
	"elb-log-reports/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	reportHandler := NewReportHandler(reportService)

	router.Get("/reports/{kind}", errorHandlingAdapter(reportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
