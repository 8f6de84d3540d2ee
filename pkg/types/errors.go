// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import (
	"fmt"
)

// ErrorCode is the closed set of structured error codes a validator or
// entry point can return. The const block lists the MSA codes first,
// then the Capability codes, then the single catch-all
// CALCULATION_ERROR used when an unexpected
// failure escapes past validation.
type ErrorCode string

const (
	// ErrMissingColumns: required Part/Operator/measurement columns
	// were not found under any recognized alias.
	ErrMissingColumns ErrorCode = "MISSING_COLUMNS"
	// ErrNonNumericData: one or more measurement cells could not be
	// parsed as a number.
	ErrNonNumericData ErrorCode = "NON_NUMERIC_DATA"
	// ErrEmptyCells: one or more required cells are blank.
	ErrEmptyCells ErrorCode = "EMPTY_CELLS"
	// ErrInsufficientData: fewer than the required unique parts,
	// operators, or measurement columns.
	ErrInsufficientData ErrorCode = "INSUFFICIENT_DATA"
	// ErrNoNumericColumn: the Capability validator could not find any
	// numeric column to analyze.
	ErrNoNumericColumn ErrorCode = "NO_NUMERIC_COLUMN"
	// ErrNonNumericValues: Capability column contains unparseable
	// values.
	ErrNonNumericValues ErrorCode = "NON_NUMERIC_VALUES"
	// ErrCalculation: an unexpected failure during computation, after
	// validation should have ruled it out.
	ErrCalculation ErrorCode = "CALCULATION_ERROR"
)

// CellRef identifies an offending cell for a structured error's
// Details, in spreadsheet notation (1-indexed row including header,
// plus the column name and raw value as read).
type CellRef struct {
	Column string `json:"column"`
	Row    int    `json:"row"`
	Value  string `json:"value"`
}

// QCError represents a structured, user-facing validation or
// computation error. Message is always Spanish and fit for end-user
// display; Details carries the structured offender list as cell
// references, and Notes carries plain Spanish advisory strings.
type QCError struct {
	Code    ErrorCode
	Message string
	Details []CellRef
	Notes   []string
	Cause   error
}

// Error implements the error interface.
func (e *QCError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *QCError) Unwrap() error {
	return e.Cause
}

// NewMissingColumnsError reports that required columns could not be
// detected under any recognized alias.
func NewMissingColumnsError(message string, notes ...string) *QCError {
	return &QCError{Code: ErrMissingColumns, Message: message, Notes: notes}
}

// NewNonNumericDataError reports up to 20 offending measurement cells.
func NewNonNumericDataError(message string, offenders []CellRef) *QCError {
	return &QCError{Code: ErrNonNumericData, Message: message, Details: capOffenders(offenders)}
}

// NewEmptyCellsError reports up to 20 blank cells.
func NewEmptyCellsError(message string, offenders []CellRef) *QCError {
	return &QCError{Code: ErrEmptyCells, Message: message, Details: capOffenders(offenders)}
}

// NewInsufficientDataError reports a structural shortfall (too few
// parts, operators, or measurement columns).
func NewInsufficientDataError(message string, notes ...string) *QCError {
	return &QCError{Code: ErrInsufficientData, Message: message, Notes: notes}
}

// NewNoNumericColumnError reports that the Capability validator found
// no usable numeric column.
func NewNoNumericColumnError(message string) *QCError {
	return &QCError{Code: ErrNoNumericColumn, Message: message}
}

// NewNonNumericValuesError reports up to 20 unparseable Capability
// values, by 1-indexed row.
func NewNonNumericValuesError(message string, offenders []CellRef) *QCError {
	return &QCError{Code: ErrNonNumericValues, Message: message, Details: capOffenders(offenders)}
}

// NewCalculationError wraps an unexpected computation failure that
// escaped past validation.
func NewCalculationError(message string, cause error) *QCError {
	return &QCError{Code: ErrCalculation, Message: message, Cause: cause}
}

// maxOffenders is the limit on reported offending cells per spec.md
// §4.2 ("report up to 20 offenders").
const maxOffenders = 20

func capOffenders(offenders []CellRef) []CellRef {
	if len(offenders) > maxOffenders {
		return offenders[:maxOffenders]
	}
	return offenders
}
