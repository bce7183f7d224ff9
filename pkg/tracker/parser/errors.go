package parser

import (
	"errors"
	"fmt"
)

// ErrNotNumeric indicates a cell that must hold a number holds text.
var ErrNotNumeric = errors.New("not a number")

// TypeConversionError reports a cell that could not be coerced to its field type.
type TypeConversionError struct {
	Sheet  string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("sheet %q row %d column %q: cannot convert %q: %v", e.Sheet, e.Row, e.Column, e.Value, e.Err)
}

func (e *TypeConversionError) Unwrap() error {
	return e.Err
}
