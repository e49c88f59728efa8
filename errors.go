package savings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a value supplied by the user cannot be
	// used: non numeric text, an empty account name or a negative horizon.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefinedGrowthRate is returned when an annual return rate cannot be
	// converted into a monthly rate, that is for rates at or below -100%.
	ErrUndefinedGrowthRate = errors.New("undefined growth rate")

	// ErrMalformedRecord is returned when a persisted record cannot be decoded.
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordError reports a persisted record that could not be decoded.
type RecordError struct {
	Line int // 1-based line number in the source
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// recordErrorf returns a *RecordError wrapping ErrMalformedRecord.
func recordErrorf(line int, format string, args ...any) error {
	return &RecordError{
		Line: line,
		Err:  fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...)),
	}
}
