// Package mmcif provides mmCIF format parsing into named tables.
//
// mmCIF organizes data into categories ("tables") addressed by
// _table.field tags, either as single key/value assignments or as loop_
// blocks with a header and rows of values. This package reads a complete
// document into an ordered Document of Tables of Records. All values are
// strings; no dictionary validation or type interpretation is performed.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own parser instance with no shared mutable state.
//
// # Parsing APIs
//
//   - Parse(string) - Parses mmCIF from a string in memory
//   - ParseReader(io.Reader) - Reads all input, then parses it
//
// # Example usage with Parse:
//
//	doc, err := mmcif.Parse("loop_\n_atom.id\n_atom.type\n1 N\n2 C\n")
//	if err != nil {
//	    // handle error
//	}
//	atoms, _ := doc.Table("atom")
//	fmt.Println(atoms.Column("type")) // [N C]
//
// # Errors
//
// Parsing stops at the first grammar violation. Errors are *ParseError
// values carrying line numbers; use errors.Is with ErrArity,
// ErrUnterminatedQuote, ErrUnterminatedText or ErrMalformedTag, and
// errors.As with *ArityError for expected and actual counts.
package mmcif

import (
	"io"

	"github.com/shapestone/shape-mmcif/internal/parser"
)

// Parse parses an mmCIF document from a string.
//
// Example:
//
//	doc, err := mmcif.Parse("_entry.id 1ABC")
//	entry, _ := doc.Table("entry")
//	rec, _ := entry.Record(0)
//	id, _ := rec.Get("id") // "1ABC"
func Parse(input string) (*Document, error) {
	return ParseWithOptions(input, DefaultReaderOptions())
}

// ParseReader parses an mmCIF document from an io.Reader.
//
// The whole input is read before parsing starts; the parser always
// materializes the complete document.
//
// Example parsing from a file:
//
//	file, err := os.Open("1abc.cif")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	doc, err := mmcif.ParseReader(file)
func ParseReader(reader io.Reader) (*Document, error) {
	return ParseReaderWithOptions(reader, DefaultReaderOptions())
}

// Format returns the format identifier for this parser.
func Format() string {
	return "mmCIF"
}

// Validate checks if the input string is well-formed mmCIF.
//
// Returns nil if the input parses, or the first error encountered:
//
//	if err := mmcif.Validate(input); err != nil {
//	    fmt.Println("Invalid mmCIF:", err)
//	}
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// ValidateReader checks if the input from an io.Reader is well-formed mmCIF.
// This reads the entire input from the reader.
func ValidateReader(reader io.Reader) error {
	_, err := ParseReader(reader)
	return err
}

func parse(input string, opts ReaderOptions) (*Document, error) {
	p := parser.NewParserWithOptions(input, parser.Options{
		AllowIncompleteLoop: opts.AllowIncompleteLoop,
	})
	pd, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return fromParsed(pd), nil
}
