package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpQuery  = "http_query"
	FieldHttpBytes  = "http_bytes"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldRunID      = "run_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldReport     = "report"
	FieldTimeRange  = "time_range"
	FieldDayKey     = "day_key"
	FieldObjectKey  = "object_key"
	FieldLineNumber = "line_number"
	FieldParseError = "parse_error_kind"
)
