package reports

import (
	"fmt"

	"elb-log-reports/internal/shared/svcerrors"
)

const (
	codeInvalidReportRequest = "RPT_1000"
	codeInvalidTimeRange     = "RPT_1001"

	codeInternalRunFailed    = "RPT_9000"
	codeInternalOutputFailed = "RPT_9001"
)

// errInvalidReportRequest returns an error for a bad report, unit, code or flag combination.
func errInvalidReportRequest(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportRequest, msg, cause)
}

// errInvalidTimeRange returns an error when the dates or relative offset do not form a window.
func errInvalidTimeRange(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimeRange, "invalid time range", cause)
}

func errInternalRunFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRunFailed, fmt.Errorf("reportRunFailed: %w", cause))
}

func errInternalOutputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutputFailed, fmt.Errorf("reportOutputFailed: %w", cause))
}
