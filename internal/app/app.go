package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	internalhttp "elb-log-reports/internal/http"
	"elb-log-reports/internal/models"
	"elb-log-reports/internal/objectsources"
	"elb-log-reports/internal/parsers"
	"elb-log-reports/internal/reports"
	"elb-log-reports/internal/scanners"
	"elb-log-reports/internal/shared/configs"
	"elb-log-reports/internal/shared/loggers"
	"elb-log-reports/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config        *configs.Config
	appLogger     loggers.Logger
	reportService reports.ReportService
	server        *http.Server
}

// New wires the report pipeline from config. Opening the object store checks that the
// bucket (or local root) is reachable, so a bad source fails here with SRC_9002.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "elbreport").
		Logger()

	store, err := newObjectStore(ctx, config.Source)
	if err != nil {
		return nil, err
	}

	layout := models.PartitionLayout{
		Prefix:    config.Source.Prefix,
		AccountID: config.Source.AccountID,
		Region:    config.Source.Region,
	}
	objectSource := objectsources.NewObjectSource(store, layout)
	fetcher := streams.NewOrderedFetcher(objectSource, config.Source.FetchConcurrency)
	scanner := scanners.NewLogScanner(objectSource, fetcher, parsers.NewRecordParser(), scanners.Options{
		SkipUnreadableObjects: config.Source.SkipUnreadableObjects,
	})
	reportService := reports.NewReportService(scanner, reports.NewReportEngine())

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		reportService: reportService,
		server:        server,
	}, nil
}

func newObjectStore(ctx context.Context, source configs.SourceConfig) (objectsources.ObjectStore, error) {
	switch source.Backend {
	case configs.BackendLocal:
		return objectsources.NewLocalStore(source.RootDir)
	default:
		return objectsources.NewS3Store(ctx, source.Bucket, source.Region)
	}
}

// RunReport runs one report and writes its lines to w.
func (app *App) RunReport(ctx context.Context, req *models.ReportRequest, w io.Writer) (*reports.Outcome, error) {
	ctx = app.appLogger.With().
		Str(loggers.FieldComponent, "cli").
		Logger().WithContext(ctx)
	return app.reportService.Run(ctx, req, w)
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting elbreport server on port %d (log_level=%s, backend=%s, fetch_concurrency=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Source.Backend,
			app.config.Source.FetchConcurrency)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server, waiting for in-flight reports until ctx expires.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
