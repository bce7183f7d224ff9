package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/parser"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingSheet indicates a required sheet is absent from the workbook.
var ErrMissingSheet = errors.New("required sheet not found")

// MissingInputError reports a missing workbook or required sheet.
// Err is ErrFileNotFound or ErrMissingSheet.
type MissingInputError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *MissingInputError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("workbook %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("workbook %q: sheet %q: %v", e.Path, e.Sheet, e.Err)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// TypeConversionError reports a cell that must be numeric but is not.
type TypeConversionError = parser.TypeConversionError

// HeaderMismatchError reports header labels that differ from the expected
// columns. It is only returned with Options.StrictHeaders.
type HeaderMismatchError struct {
	Sheet  string
	Issues []parser.HeaderIssue
}

func (e *HeaderMismatchError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("sheet %q header mismatch: %s", e.Sheet, strings.Join(parts, "; "))
}

// SheetError represents a failure reading a sheet.
type SheetError struct {
	SheetName string
	Component string // "rows", "cells"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
