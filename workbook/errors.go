package workbook

import "errors"

// Validation errors raised by the range calculator and the request builders.
// They are programming errors on the caller's side and are never retried.
var (
	// ErrTypeMismatch indicates an argument of the wrong type, e.g. a
	// columnHidden value that is not a boolean.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidArgument indicates a missing or blank required value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeMismatch indicates a ragged table or an optional field whose
	// row/column dimensions disagree with the data being written.
	ErrShapeMismatch = errors.New("shape mismatch")
)
