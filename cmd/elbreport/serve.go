package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"elb-log-reports/internal/app"
	"elb-log-reports/internal/shared/configs"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *reportOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP (GET /reports/{report}) with Prometheus metrics on /metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configs.LoadConfig(opts.configPath)
			if err != nil {
				return &usageError{err: err}
			}

			application, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			serverErr := make(chan error, 1)
			go func() {
				serverErr <- application.Start()
			}()

			select {
			case err := <-serverErr:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-cmd.Context().Done():
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return application.Shutdown(ctx)
		},
	}
}
