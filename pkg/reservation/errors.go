package reservation

import (
	"errors"
	"fmt"
)

// DecodeError is returned when the booking API sends a code that is missing
// from a table expected to be exhaustive
type DecodeError struct {
	Table string
	Code  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown %s code %q", e.Table, e.Code)
}

// FormatError is returned when a numeric field cannot be parsed
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("field %s: invalid number %q", e.Field, e.Value)
}

func (e *FormatError) Unwrap() error { return e.Err }

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func IsFormatError(err error) bool {
	var target *FormatError
	return errors.As(err, &target)
}
