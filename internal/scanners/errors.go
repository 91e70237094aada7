package scanners

import (
	"errors"
	"fmt"
)

// LineError locates a per-line failure inside the object it was read from.
type LineError struct {
	ObjectKey  string
	LineNumber int
	Err        error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.ObjectKey, e.LineNumber, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// AsLineError extracts a LineError from the error chain.
func AsLineError(err error) (*LineError, bool) {
	var lineErr *LineError
	if errors.As(err, &lineErr) {
		return lineErr, true
	}
	return nil, false
}
