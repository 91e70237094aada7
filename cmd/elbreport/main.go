package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"elb-log-reports/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitSourceError = 1
	exitUsageError  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and maps the outcome to a process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "elbreport: %v\n", err)
	code := exitCode(err)
	if code == exitUsageError {
		fmt.Fprintln(stderr, "Run 'elbreport --help' for usage.")
	}
	return code
}

// usageError marks command-line mistakes caught before any log object is read.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var usage *usageError
	if errors.As(err, &usage) {
		return exitUsageError
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.IsInvalidArgument() {
		return exitUsageError
	}
	return exitSourceError
}

func newRootCmd() *cobra.Command {
	opts := &reportOptions{}

	rootCmd := &cobra.Command{
		Use:   "elbreport <report> (--from YYYY/MM/DD --to YYYY/MM/DD | --for <value> <unit>)",
		Short: "Report on load balancer access logs",
		Long: `elbreport reads load balancer access logs from their date-partitioned bucket and prints
one line per matching entry.

Reports:
  getcodes   entries with a 4xx/5xx load balancer status (or exactly --code)
  geturls    requested URLs
  getUAs     user agents with their browser family
  getreport  one summary line per entry

Examples:
  elbreport getcodes --from 2017/10/15 --to 2017/10/16
  elbreport getcodes --code 503 --for 7 days --max 20
  elbreport geturls --for "2 hours"`,
		Args:          reportArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (defaults apply when omitted)")

	flags := rootCmd.Flags()
	flags.IntVar(&opts.code, "code", 0, "only entries with this load balancer status code")
	flags.StringVar(&opts.from, "from", "", "first day to report on, YYYY/MM/DD (UTC)")
	flags.StringVar(&opts.to, "to", "", "last day to report on, YYYY/MM/DD (UTC)")
	flags.StringVar(&opts.forValue, "for", "", "report on the last <value> <unit>; unit is years, months, days, hours or minutes")
	flags.IntVar(&opts.max, "max", -1, "stop after this many lines (negative means no limit)")

	rootCmd.AddCommand(newServeCmd(opts))
	return rootCmd
}
