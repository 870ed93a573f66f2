// Package parser implements the line-driven state machine that builds mmCIF tables.
//
// The input is scanned once, one physical line at a time. Each line is
// trimmed and then dispatched on the current state:
//
//	Document  = { Line } ;
//	Line      = Boundary | "loop_" | Tag [ Value ] | DataRow | TextField ;
//	Boundary  = "data_" ... | "#" ... ;
//	Tag       = "_" Table "." Field ;
//	TextField = ";" Text { Text } ";" ;
//
// Value splitting within a line is delegated to internal/tokenizer.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-mmcif/internal/tokenizer"
)

// state is the parser's structural mode between lines.
type state int

const (
	// stateTop means no loop or assignment is pending.
	stateTop state = iota
	// stateLoopHeader collects tag names after loop_.
	stateLoopHeader
	// stateLoopData collects row values against the header.
	stateLoopData
	// stateKeyValue waits for the value of a tag given on its own line.
	stateKeyValue
	// stateMultiline is inside a ';' text field opened from stateKeyValue
	// or stateLoopData.
	stateMultiline
)

func (s state) String() string {
	switch s {
	case stateTop:
		return "top"
	case stateLoopHeader:
		return "loop header"
	case stateLoopData:
		return "loop data"
	case stateKeyValue:
		return "key/value"
	case stateMultiline:
		return "multiline"
	default:
		return "unknown"
	}
}

// Options configures the parser behavior.
type Options struct {
	// AllowIncompleteLoop drops a partial loop row left at end of input
	// instead of failing. Boundaries (data_, #, loop_) always fail on a
	// partial row.
	AllowIncompleteLoop bool
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{}
}

// Parser holds all scan state for a single parse.
// A Parser must not be reused after Parse returns.
type Parser struct {
	lines []string
	opts  Options
	doc   *Document

	line  int // 1-indexed number of the line being processed
	state state

	table  string   // table of the most recent tag
	header []string // loop field names
	values []string // loop values for the row being collected

	record      Record // pending key/value record
	recordTable string

	field     string // tag waiting for its value in stateKeyValue
	text      strings.Builder
	textStart int
	resume    state // state that opened the text field
}

// NewParser creates a new mmCIF parser for the given input string.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a new mmCIF parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	return &Parser{
		lines: strings.Split(input, "\n"),
		opts:  opts,
		doc:   newDocument(),
	}
}

// Parse scans the input and returns the completed document.
// The first grammar violation aborts the parse; no partial document is
// returned alongside an error. Every line must be valid UTF-8, text fields
// and tags included.
func (p *Parser) Parse() (*Document, error) {
	for i, raw := range p.lines {
		p.line = i + 1
		if !utf8.ValidString(raw) {
			return nil, p.errorf(p.line, "", ErrInvalidUTF8)
		}
		if err := p.step(strings.TrimSpace(raw)); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

// step applies one line to the state machine.
func (p *Parser) step(line string) error {
	switch p.state {
	case stateMultiline:
		return p.textLine(line)
	case stateKeyValue:
		return p.valueLine(line)
	}

	switch {
	case strings.HasPrefix(line, "data_"):
		if p.doc.Name == "" {
			p.doc.Name = strings.TrimSpace(line[len("data_"):])
		}
		return p.boundary()
	case strings.HasPrefix(line, "#"):
		return p.boundary()
	case line == "loop_":
		if err := p.boundary(); err != nil {
			return err
		}
		p.state = stateLoopHeader
		return nil
	case strings.HasPrefix(line, "_"):
		return p.tag(line)
	case p.inLoop():
		return p.dataLine(line)
	}
	// Anything else outside a loop carries no data.
	return nil
}

func (p *Parser) inLoop() bool {
	return p.state == stateLoopHeader || p.state == stateLoopData
}

// boundary closes the current construct and resets to stateTop.
func (p *Parser) boundary() error {
	p.flushRecord()
	if len(p.values) > 0 {
		return p.errorf(p.line, "", &ArityError{
			Table:    p.table,
			Expected: len(p.header),
			Actual:   len(p.values),
		})
	}
	p.header = nil
	p.values = nil
	p.state = stateTop
	return nil
}

// tag handles a line starting with a _table.field identifier.
func (p *Parser) tag(line string) error {
	id := line
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		id = line[:i]
	}
	table, field, ok := strings.Cut(id[1:], ".")
	if !ok || table == "" || field == "" {
		return p.errorf(p.line, "", ErrMalformedTag)
	}

	p.table = table
	p.doc.ensure(table).addField(field)

	if p.inLoop() {
		p.header = append(p.header, field)
		return nil
	}

	if p.recordTable != table {
		p.flushRecord()
		p.recordTable = table
	}

	rest := strings.TrimSpace(line[len(id):])
	if rest == "" {
		p.field = field
		p.state = stateKeyValue
		return nil
	}
	return p.assign(field, rest)
}

// valueLine handles the line following a tag with no inline value.
func (p *Parser) valueLine(line string) error {
	if strings.HasPrefix(line, ";") {
		p.openText(line)
		return nil
	}
	p.state = stateTop
	return p.assign(p.field, line)
}

// assign splits line and stores its single value in the pending record.
func (p *Parser) assign(field, line string) error {
	values, err := tokenizer.Split(line)
	if err != nil {
		return p.errorf(p.line, field, err)
	}
	if len(values) != 1 {
		return p.errorf(p.line, field, &ArityError{
			Table:    p.table,
			Field:    field,
			Expected: 1,
			Actual:   len(values),
		})
	}
	p.record.set(field, values[0])
	return nil
}

// dataLine adds the values of one loop row line.
func (p *Parser) dataLine(line string) error {
	p.state = stateLoopData
	if strings.HasPrefix(line, ";") {
		p.openText(line)
		return nil
	}
	values, err := tokenizer.Split(line)
	if err != nil {
		return p.errorf(p.line, "", err)
	}
	p.values = append(p.values, values...)
	return p.checkRow()
}

// checkRow emits a record once a full row of values has been collected.
func (p *Parser) checkRow() error {
	switch n := len(p.values); {
	case n > len(p.header):
		return p.errorf(p.line, "", &ArityError{
			Table:    p.table,
			Expected: len(p.header),
			Actual:   n,
		})
	case n > 0 && n == len(p.header):
		rec := Record{
			Names:  append([]string(nil), p.header...),
			Values: p.values,
		}
		t := p.doc.ensure(p.table)
		t.Records = append(t.Records, rec)
		p.values = nil
	}
	return nil
}

// openText starts a ';' text field; the rest of the opening line seeds it.
func (p *Parser) openText(line string) {
	p.resume = p.state
	p.state = stateMultiline
	p.textStart = p.line
	p.text.Reset()
	p.text.WriteString(strings.TrimSpace(line[1:]))
}

// textLine extends or closes the open text field.
func (p *Parser) textLine(line string) error {
	if !strings.HasPrefix(line, ";") {
		p.text.WriteString(line)
		return nil
	}

	value := p.text.String()
	p.text.Reset()
	p.state = p.resume

	if p.state == stateKeyValue {
		p.record.set(p.field, value)
		p.state = stateTop
		return nil
	}
	p.values = append(p.values, value)
	return p.checkRow()
}

// finish applies end-of-input rules.
func (p *Parser) finish() error {
	switch p.state {
	case stateMultiline:
		field := ""
		if p.resume == stateKeyValue {
			field = p.field
		}
		err := p.errorf(p.line, field, ErrUnterminatedText)
		err.StartLine = p.textStart
		return err
	case stateKeyValue:
		return p.errorf(p.line, p.field, &ArityError{
			Table:    p.table,
			Field:    p.field,
			Expected: 1,
			Actual:   0,
		})
	}

	p.flushRecord()
	if len(p.values) > 0 && !p.opts.AllowIncompleteLoop {
		return p.errorf(p.line, "", &ArityError{
			Table:    p.table,
			Expected: len(p.header),
			Actual:   len(p.values),
		})
	}
	return nil
}

// flushRecord appends the pending key/value record to its table.
func (p *Parser) flushRecord() {
	if p.record.Len() > 0 {
		t := p.doc.ensure(p.recordTable)
		t.Records = append(t.Records, p.record)
	}
	p.record = Record{}
	p.recordTable = ""
}

func (p *Parser) errorf(line int, field string, err error) *ParseError {
	return &ParseError{
		StartLine: line,
		Line:      line,
		Table:     p.table,
		Field:     field,
		Err:       err,
	}
}
