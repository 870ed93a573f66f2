// Package mmcif provides Document rendering to mmCIF text.
package mmcif

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnrenderable indicates a name or value that has no mmCIF spelling the
// parser would read back unchanged.
var ErrUnrenderable = errors.New("cannot render")

// Render converts a Document to mmCIF bytes.
//
// Layout:
//   - a data_ line with the document name
//   - tables in document order, separated by '#' lines
//   - a table with one record as _table.field value lines
//   - a table whose records share the same fields as a loop_ block
//   - any other table as one key/value block per record
//   - a table with fields but no records as an empty loop_ header
//   - a table declaring fields its records do not carry in that order gets
//     an empty loop_ header listing every field before its records
//
// Values are written bare when possible, otherwise single quoted, double
// quoted, or as a ';' text field when they contain both quote kinds.
// Parsing the output yields an equal Document.
//
// Example:
//
//	doc, _ := mmcif.Parse(input)
//	out, _ := mmcif.Render(doc)
func Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	if err := renderDocument(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MMCIF renders the Document back to an mmCIF string.
func (d *Document) MMCIF() (string, error) {
	out, err := Render(d)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func renderDocument(doc *Document, buf *bytes.Buffer) error {
	// The parser trims the data_ line, so padding would not survive.
	if strings.ContainsAny(doc.name, "\r\n") || strings.TrimSpace(doc.name) != doc.name || !utf8.ValidString(doc.name) {
		return fmt.Errorf("%w: data block name %q", ErrUnrenderable, doc.name)
	}
	buf.WriteString("data_")
	buf.WriteString(doc.name)
	buf.WriteByte('\n')

	for _, t := range doc.tables {
		if len(t.records) == 0 && len(t.fields) == 0 {
			// Nothing in the grammar declares a table without a field.
			continue
		}
		buf.WriteString("#\n")
		if err := renderTable(t, buf); err != nil {
			return err
		}
	}
	if len(doc.tables) > 0 {
		buf.WriteString("#\n")
	}
	return nil
}

func renderTable(t *Table, buf *bytes.Buffer) error {
	if err := checkName(t.name, true); err != nil {
		return err
	}
	for i, r := range t.records {
		if r.Len() == 0 {
			return fmt.Errorf("%w: table %s record %d has no fields", ErrUnrenderable, t.name, i)
		}
	}

	if len(t.records) == 0 {
		return renderLoop(t.name, t.fields, nil, buf)
	}
	if !sameFields(t.fields, recordFields(t.records)) {
		if err := renderLoop(t.name, t.fields, nil, buf); err != nil {
			return err
		}
		buf.WriteString("#\n")
	}

	switch {
	case len(t.records) == 1 && !hasDuplicates(t.records[0].names):
		return renderPairs(t.name, t.records[0], buf)
	case uniform(t.records):
		return renderLoop(t.name, t.records[0].names, t.records, buf)
	}

	for i, r := range t.records {
		if i > 0 {
			buf.WriteString("#\n")
		}
		if err := renderPairs(t.name, r, buf); err != nil {
			return err
		}
	}
	return nil
}

// renderPairs writes one record as key/value lines.
func renderPairs(table string, r Record, buf *bytes.Buffer) error {
	for i, name := range r.names {
		if err := checkName(name, false); err != nil {
			return err
		}
		value, text, err := encodeValue(r.values[i])
		if err != nil {
			return fmt.Errorf("_%s.%s: %w", table, name, err)
		}
		fmt.Fprintf(buf, "_%s.%s", table, name)
		if text {
			buf.WriteString("\n;")
			buf.WriteString(value)
			buf.WriteString("\n;\n")
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(value)
		buf.WriteByte('\n')
	}
	return nil
}

// renderLoop writes a loop_ header and one line per record.
func renderLoop(table string, header []string, records []Record, buf *bytes.Buffer) error {
	buf.WriteString("loop_\n")
	for _, name := range header {
		if err := checkName(name, false); err != nil {
			return err
		}
		fmt.Fprintf(buf, "_%s.%s\n", table, name)
	}

	for _, r := range records {
		line := make([]string, 0, len(r.values))
		for i, v := range r.values {
			value, text, err := encodeValue(v)
			if err != nil {
				return fmt.Errorf("_%s.%s: %w", table, r.names[i], err)
			}
			if !text {
				line = append(line, value)
				continue
			}
			if len(line) > 0 {
				buf.WriteString(strings.Join(line, " "))
				buf.WriteByte('\n')
				line = line[:0]
			}
			buf.WriteByte(';')
			buf.WriteString(value)
			buf.WriteString("\n;\n")
		}
		if len(line) > 0 {
			buf.WriteString(strings.Join(line, " "))
			buf.WriteByte('\n')
		}
	}
	return nil
}

// encodeValue returns the spelling of v and whether it must be written as
// a ';' text field.
func encodeValue(v string) (string, bool, error) {
	if strings.ContainsAny(v, "\r\n") {
		return "", false, fmt.Errorf("%w: value %q contains a line break", ErrUnrenderable, v)
	}
	if !utf8.ValidString(v) {
		return "", false, fmt.Errorf("%w: value %q is not valid UTF-8", ErrUnrenderable, v)
	}
	if isBare(v) {
		return v, false, nil
	}
	if !strings.ContainsRune(v, '\'') {
		return "'" + v + "'", false, nil
	}
	if !strings.ContainsRune(v, '"') {
		return `"` + v + `"`, false, nil
	}
	// Text fields are trimmed when read back.
	if strings.TrimSpace(v) != v {
		return "", false, fmt.Errorf("%w: value %q has both quote kinds and surrounding whitespace", ErrUnrenderable, v)
	}
	return v, true, nil
}

// isBare reports whether v reads back as itself without quoting in any
// position of a line.
func isBare(v string) bool {
	if v == "" || v == "loop_" || strings.HasPrefix(v, "data_") {
		return false
	}
	switch v[0] {
	case '\'', '"', '_', '#', ';':
		return false
	}
	return strings.IndexFunc(v, unicode.IsSpace) < 0
}

// checkName rejects names that would not survive tag splitting.
func checkName(name string, table bool) error {
	bad := name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 || !utf8.ValidString(name)
	if table && strings.Contains(name, ".") {
		bad = true
	}
	if bad {
		return fmt.Errorf("%w: name %q", ErrUnrenderable, name)
	}
	return nil
}

func uniform(records []Record) bool {
	for _, r := range records[1:] {
		if !sameNames(records[0], r) {
			return false
		}
	}
	return len(records[0].names) > 0
}

// recordFields returns the field names carried by records in first-seen
// order, which is the order a parse of the rendered records declares them.
func recordFields(records []Record) []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, n := range r.names {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

func sameFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasDuplicates(names []string) bool {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return true
		}
		seen[n] = true
	}
	return false
}
