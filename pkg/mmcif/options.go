package mmcif

import (
	"io"
)

// ReaderOptions configures mmCIF parsing behavior.
type ReaderOptions struct {
	// AllowIncompleteLoop controls what happens to a loop row that is still
	// missing values at end of input. If false, parsing fails with an
	// *ArityError. If true, the partial row is dropped silently.
	// A partial row before data_, # or loop_ is always an error.
	// Default: false
	AllowIncompleteLoop bool
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		AllowIncompleteLoop: false,
	}
}

// ParseWithOptions parses an mmCIF document from a string with custom options.
//
// Example:
//
//	opts := mmcif.DefaultReaderOptions()
//	opts.AllowIncompleteLoop = true
//	doc, err := mmcif.ParseWithOptions(input, opts)
func ParseWithOptions(input string, opts ReaderOptions) (*Document, error) {
	return parse(input, opts)
}

// ParseReaderWithOptions parses an mmCIF document from an io.Reader with custom options.
func ParseReaderWithOptions(reader io.Reader, opts ReaderOptions) (*Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return parse(string(data), opts)
}
