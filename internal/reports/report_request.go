package reports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"elb-log-reports/internal/models"
	"elb-log-reports/internal/shared/validators"
)

// RequestParams is the raw, unvalidated input of a report run as typed by a user on the
// command line or in a query string.
type RequestParams struct {
	Report string
	Code   *int
	From   string // YYYY/MM/DD
	To     string // YYYY/MM/DD
	For    string // "<value> <unit>", e.g. "7 days"
	Max    *int
}

var requestValidator = validators.New()

// NewReportRequest validates params and builds the request. now anchors relative ranges.
// Every failure is an invalid-argument ServiceError (RPT_1000 or RPT_1001) and happens before
// any log object is touched.
func NewReportRequest(params RequestParams, now time.Time) (*models.ReportRequest, error) {
	kind, err := models.NewReportKindFromString(params.Report)
	if err != nil {
		return nil, errInvalidReportRequest(err.Error(), err)
	}

	tr, err := buildTimeRange(params, now)
	if err != nil {
		return nil, err
	}

	maxLines := models.Unbounded
	if params.Max != nil && *params.Max >= 0 {
		maxLines = *params.Max
	}

	req := &models.ReportRequest{
		Kind:  kind,
		Code:  params.Code,
		Range: tr,
		Max:   maxLines,
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func buildTimeRange(params RequestParams, now time.Time) (models.TimeRange, error) {
	absolute := params.From != "" || params.To != ""
	relative := strings.TrimSpace(params.For) != ""

	switch {
	case absolute && relative:
		return models.TimeRange{}, errInvalidReportRequest("use either --from/--to or --for, not both", nil)
	case absolute:
		if params.From == "" || params.To == "" {
			return models.TimeRange{}, errInvalidReportRequest("--from and --to must be given together", nil)
		}
		tr, err := models.NewAbsoluteTimeRange(params.From, params.To)
		if err != nil {
			return models.TimeRange{}, errInvalidTimeRange(err)
		}
		return tr, nil
	case relative:
		value, unit, err := ParseRelative(params.For)
		if err != nil {
			return models.TimeRange{}, err
		}
		tr, err := models.NewRelativeTimeRange(now, value, unit)
		if err != nil {
			return models.TimeRange{}, errInvalidTimeRange(err)
		}
		return tr, nil
	default:
		return models.TimeRange{}, errInvalidReportRequest("a time range is required: --from and --to, or --for <value> <unit>", nil)
	}
}

// ParseRelative splits "7 days" into its value and unit.
func ParseRelative(s string) (int, models.TimeUnit, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, "", errInvalidTimeRange(fmt.Errorf("expected \"<value> <unit>\", got %q", s))
	}
	value, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", errInvalidTimeRange(fmt.Errorf("relative value %q is not an integer", parts[0]))
	}
	unit, err := models.NewTimeUnitFromString(parts[1])
	if err != nil {
		return 0, "", errInvalidReportRequest(err.Error(), err)
	}
	return value, unit, nil
}

func validateRequest(req *models.ReportRequest) error {
	if req == nil {
		return errInvalidReportRequest("report request is required", nil)
	}
	if err := requestValidator.Struct(req); err != nil {
		return errInvalidReportRequest(formatValidationError(err), err)
	}
	if req.Range.From.IsZero() || req.Range.To.IsZero() || req.Range.From.After(req.Range.To) {
		return errInvalidTimeRange(fmt.Errorf("window %s is empty", req.Range))
	}
	return nil
}

func formatValidationError(err error) string {
	var validationErrs validators.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Field() {
		case "Kind":
			msgs = append(msgs, fmt.Sprintf("report must be one of %v", models.ValidReportKinds()))
		case "Code":
			msgs = append(msgs, "code must be an HTTP status between 100 and 599")
		default:
			msgs = append(msgs, fmt.Sprintf("%s (%s)", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
