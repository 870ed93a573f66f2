//go:build go1.18
// +build go1.18

package tokenizer

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzSplit tests Split with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzSplit -fuzztime=30s ./internal/tokenizer
func FuzzSplit(f *testing.F) {
	seeds := []string{
		"",
		" ",
		"'",
		`"`,
		"''",
		"a b c",
		"'quoted value'",
		`"it's"`,
		"'ab'cd",
		"C1' 'x",
		"caf\xe9",
		"'\xff'",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Split should never panic, regardless of input
		values, err := Split(input)
		if !utf8.ValidString(input) {
			if !errors.Is(err, ErrInvalidUTF8) {
				t.Fatalf("invalid UTF-8 %q: got %q, %v", input, values, err)
			}
			return
		}
		if err != nil {
			return
		}
		for _, v := range values {
			if !strings.Contains(input, v) {
				t.Errorf("value %q is not a substring of %q", v, input)
			}
		}
		if strings.TrimSpace(input) == "" && len(values) != 0 {
			t.Errorf("blank input %q produced values %q", input, values)
		}
		if !strings.ContainsAny(input, "'\"") && len(values) != len(strings.Fields(input)) {
			t.Errorf("unquoted input %q split into %d values, want %d", input, len(values), len(strings.Fields(input)))
		}
	})
}
