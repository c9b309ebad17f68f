package psa

import (
	"errors"
	"fmt"
)

// ErrColumnCount reports a record whose width differs from the declared schema.
var ErrColumnCount = errors.New("wrong number of columns")

// ErrNotFinite reports a NaN or infinite cost or QALY value.
var ErrNotFinite = errors.New("value is not finite")

// InputSchemaError reports input that does not match the declared PSA schema:
// a record with the wrong column count or a cell that does not parse as its
// column's type.
type InputSchemaError struct {
	Line   int    // 1-based line (CSV) or row (XLSX), header included
	Column string // schema column name, empty for whole-record errors
	Value  string // offending cell, if known
	Err    error
}

func (e *InputSchemaError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("psa: line %d column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("psa: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("psa: %v", e.Err)
	}
}

func (e *InputSchemaError) Unwrap() error {
	return e.Err
}

// InputCardinalityError reports a well-typed table whose shape breaks the
// one-row-per-strategy-per-run layout.
type InputCardinalityError struct {
	Reason string
	Rows   int
	Runs   int
}

func (e *InputCardinalityError) Error() string {
	return fmt.Sprintf("psa: %s (rows=%d runs=%d)", e.Reason, e.Rows, e.Runs)
}

// IsInputError reports whether err (or any error in its chain) is a schema
// or cardinality error.
func IsInputError(err error) bool {
	var se *InputSchemaError
	var ce *InputCardinalityError
	return errors.As(err, &se) || errors.As(err, &ce)
}
