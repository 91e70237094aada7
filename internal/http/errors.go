package http

import (
	"fmt"

	"elb-log-reports/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParam = "HTTP_1000"
)

func errInvalidQueryParam(name, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("query parameter %s=%q must be an integer", name, value), cause)
}
