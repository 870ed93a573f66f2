package mmcif

import (
	"github.com/shapestone/shape-mmcif/internal/parser"
)

// ParseError represents a parsing error with position information.
//
// Fields:
//   - StartLine: line where the failing construct started (1-indexed)
//   - Line: line where the error was detected (1-indexed)
//   - Table, Field: the construct being parsed, when known
//   - Err: the underlying error
type ParseError = parser.ParseError

// ArityError reports a value count that does not match the expected count:
// too many or too few values for a loop header, or anything other than
// exactly one value for a key/value assignment.
type ArityError = parser.ArityError

// Common parsing errors
var (
	// ErrUnterminatedQuote indicates a quoted value without its closing quote on the same line.
	ErrUnterminatedQuote = parser.ErrUnterminatedQuote

	// ErrArity indicates a mismatch between values and expected fields.
	ErrArity = parser.ErrArity

	// ErrUnterminatedText indicates a ';' text field still open at end of input.
	ErrUnterminatedText = parser.ErrUnterminatedText

	// ErrMalformedTag indicates a data tag that is not of the form _table.field.
	ErrMalformedTag = parser.ErrMalformedTag

	// ErrInvalidUTF8 indicates an input line that is not valid UTF-8.
	ErrInvalidUTF8 = parser.ErrInvalidUTF8
)
