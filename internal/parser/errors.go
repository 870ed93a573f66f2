package parser

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-mmcif/internal/tokenizer"
)

// Parsing errors. Every failure returned by Parse wraps one of these.
var (
	// ErrUnterminatedQuote indicates a quoted value without its closing quote.
	ErrUnterminatedQuote = tokenizer.ErrUnterminatedQuote

	// ErrArity indicates a value count that does not match the expected count.
	ErrArity = errors.New("wrong number of values")

	// ErrUnterminatedText indicates a ';' text block still open at end of input.
	ErrUnterminatedText = errors.New("unterminated text field")

	// ErrMalformedTag indicates a data tag that is not of the form _table.field.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrInvalidUTF8 indicates a line that is not valid UTF-8.
	ErrInvalidUTF8 = tokenizer.ErrInvalidUTF8
)

// ArityError reports a mismatch between collected values and expected fields.
type ArityError struct {
	// Table is the table the values belong to.
	Table string
	// Field is set for single-value assignments.
	Field string
	// Expected is the number of values required.
	Expected int
	// Actual is the number of values collected.
	Actual int
}

func (e *ArityError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %s.%s expects %d, got %d", ErrArity, e.Table, e.Field, e.Expected, e.Actual)
	}
	if e.Actual > e.Expected {
		return fmt.Sprintf("%v: too many values in %s (%d, %d expected)", ErrArity, e.Table, e.Actual, e.Expected)
	}
	return fmt.Sprintf("%v: too few values in %s (%d, %d expected)", ErrArity, e.Table, e.Actual, e.Expected)
}

// Unwrap returns ErrArity.
func (e *ArityError) Unwrap() error {
	return ErrArity
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	// StartLine is the line where the failing construct started (1-indexed).
	StartLine int
	// Line is the line where the error was detected (1-indexed).
	Line int
	// Table and Field name the construct being parsed, when known.
	Table string
	Field string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	where := ""
	if e.Table != "" && e.Field != "" {
		where = fmt.Sprintf(" in _%s.%s", e.Table, e.Field)
	} else if e.Table != "" {
		where = fmt.Sprintf(" in %s", e.Table)
	}
	if e.StartLine == e.Line {
		return fmt.Sprintf("parse error on line %d%s: %v", e.Line, where, e.Err)
	}
	return fmt.Sprintf("parse error on line %d (started line %d)%s: %v",
		e.Line, e.StartLine, where, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
