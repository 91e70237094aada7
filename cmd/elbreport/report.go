package main

import (
	"fmt"
	"strings"
	"time"

	"elb-log-reports/internal/app"
	"elb-log-reports/internal/models"
	"elb-log-reports/internal/reports"
	"elb-log-reports/internal/shared/configs"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type reportOptions struct {
	configPath string

	code     int
	from     string
	to       string
	forValue string
	max      int
}

// reportArgs accepts the report name, plus the unit when --for was given as two words
// (--for 7 days).
func reportArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &usageError{err: fmt.Errorf("a report is required: one of %s", strings.Join(models.ValidReportKinds(), ", "))}
	case 1, 2:
		return nil
	default:
		return &usageError{err: fmt.Errorf("unexpected arguments: %s", strings.Join(args[2:], " "))}
	}
}

func runReport(cmd *cobra.Command, opts *reportOptions, args []string) error {
	params, err := requestParams(cmd.Flags(), opts, args)
	if err != nil {
		return err
	}
	req, err := reports.NewReportRequest(params, time.Now())
	if err != nil {
		return err
	}

	cfg, err := configs.LoadConfig(opts.configPath)
	if err != nil {
		return &usageError{err: err}
	}
	application, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	_, err = application.RunReport(cmd.Context(), req, cmd.OutOrStdout())
	return err
}

// requestParams turns flags and positional arguments into report parameters. Only flags the
// user actually set are forwarded, so "--code 0" is still rejected as an invalid status.
func requestParams(flags *pflag.FlagSet, opts *reportOptions, args []string) (reports.RequestParams, error) {
	params := reports.RequestParams{
		Report: args[0],
		From:   opts.from,
		To:     opts.to,
		For:    opts.forValue,
	}

	if len(args) == 2 {
		if !flags.Changed("for") {
			return params, &usageError{err: fmt.Errorf("unexpected argument %q", args[1])}
		}
		params.For = opts.forValue + " " + args[1]
	}
	if flags.Changed("code") {
		code := opts.code
		params.Code = &code
	}
	if flags.Changed("max") {
		maxLines := opts.max
		params.Max = &maxLines
	}
	return params, nil
}
