package parsers

import (
	"errors"
	"fmt"
)

// ParseErrorKind classifies why a line could not become a LogRecord.
type ParseErrorKind string

const (
	KindTruncated    ParseErrorKind = "truncated"
	KindBadTimestamp ParseErrorKind = "bad_timestamp"
	KindBadNumber    ParseErrorKind = "bad_number"
)

// ParseError is returned for a single unusable line. The caller decides whether to skip it.
type ParseError struct {
	Kind  ParseErrorKind
	Field string // offending field, empty for truncated lines
	Value string
	Cause error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindTruncated:
		return fmt.Sprintf("%s: %s", e.Kind, e.Value)
	default:
		return fmt.Sprintf("%s: field %s: %q", e.Kind, e.Field, e.Value)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// AsParseError extracts a ParseError from the error chain.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

func errTruncated(got int) *ParseError {
	return &ParseError{Kind: KindTruncated, Value: fmt.Sprintf("expected at least %d fields, got %d", minFields, got)}
}

func errBadTimestamp(value string, cause error) *ParseError {
	return &ParseError{Kind: KindBadTimestamp, Field: fieldNames[fieldTimestamp], Value: value, Cause: cause}
}

func errBadNumber(field int, value string, cause error) *ParseError {
	return &ParseError{Kind: KindBadNumber, Field: fieldNames[field], Value: value, Cause: cause}
}
