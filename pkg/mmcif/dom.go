// Package mmcif provides a user-friendly DOM API for parsed mmCIF data.
//
// # Document Type
//
// Document is an ordered set of named tables:
//
//	doc, _ := mmcif.Parse(input)
//	atoms, ok := doc.Table("atom_site")
//
// # Table Type
//
// Table holds the records of one category in source order:
//
//	for _, rec := range atoms.Records() {
//		x, _ := rec.Get("Cartn_x")
//	}
//	ids := atoms.Column("id")
//
// # Building Documents
//
// Documents can be assembled by hand and rendered to mmCIF text:
//
//	doc := mmcif.NewDocument().SetName("demo")
//	doc.AddTable("entry").AddRecord(mmcif.NewRecord().Set("id", "demo"))
//	text, _ := doc.MMCIF()
package mmcif

import "github.com/shapestone/shape-mmcif/internal/parser"

// Document represents a parsed mmCIF data block as an ordered set of tables.
// Table order is the order of first mention in the source.
type Document struct {
	name   string
	tables []*Table
	index  map[string]*Table
}

// Table represents one mmCIF category: a name and its records.
type Table struct {
	name    string
	fields  []string
	records []Record
}

// Record represents a single row of a table. Field order is preserved.
// Records are values; Set returns a modified copy.
type Record struct {
	names  []string
	values []string
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{index: make(map[string]*Table)}
}

// fromParsed wraps the parser's output.
func fromParsed(pd *parser.Document) *Document {
	doc := NewDocument().SetName(pd.Name)
	for _, pt := range pd.Tables {
		t := doc.AddTable(pt.Name).AddFields(pt.Fields...)
		t.records = make([]Record, len(pt.Records))
		for i, pr := range pt.Records {
			t.records[i] = Record{names: pr.Names, values: pr.Values}
		}
	}
	return doc
}

// Name returns the data block name, without the data_ prefix.
func (d *Document) Name() string {
	return d.name
}

// SetName sets the data block name.
// Returns the Document for method chaining.
func (d *Document) SetName(name string) *Document {
	d.name = name
	return d
}

// AddTable returns the named table, creating it empty if it does not exist.
func (d *Document) AddTable(name string) *Table {
	if t, ok := d.index[name]; ok {
		return t
	}
	t := &Table{name: name}
	d.index[name] = t
	d.tables = append(d.tables, t)
	return t
}

// Table returns the named table.
// Returns (nil, false) if the document has no such table.
func (d *Document) Table(name string) (*Table, bool) {
	t, ok := d.index[name]
	return t, ok
}

// Tables returns all tables in document order.
func (d *Document) Tables() []*Table {
	out := make([]*Table, len(d.tables))
	copy(out, d.tables)
	return out
}

// TableNames returns the table names in document order.
func (d *Document) TableNames() []string {
	names := make([]string, len(d.tables))
	for i, t := range d.tables {
		names[i] = t.name
	}
	return names
}

// Len returns the number of tables.
func (d *Document) Len() int {
	return len(d.tables)
}

// Map returns the document as plain Go values: table name to a list of
// field maps. Ordering is lost; use Tables for ordered access.
func (d *Document) Map() map[string][]map[string]string {
	out := make(map[string][]map[string]string, len(d.tables))
	for _, t := range d.tables {
		rows := make([]map[string]string, len(t.records))
		for i, r := range t.records {
			rows[i] = r.Map()
		}
		out[t.name] = rows
	}
	return out
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Fields returns every field name known for the table in first-seen order.
func (t *Table) Fields() []string {
	out := make([]string, len(t.fields))
	copy(out, t.fields)
	return out
}

// AddFields declares field names without adding a record, as an empty
// loop header does. Names already known are skipped.
// Returns the Table for method chaining.
func (t *Table) AddFields(names ...string) *Table {
	for _, name := range names {
		if !t.hasField(name) {
			t.fields = append(t.fields, name)
		}
	}
	return t
}

func (t *Table) hasField(name string) bool {
	for _, f := range t.fields {
		if f == name {
			return true
		}
	}
	return false
}

// Records returns the table's records in source order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Record returns the record at the specified index.
// Returns (Record{}, false) if the index is out of bounds.
func (t *Table) Record(index int) (Record, bool) {
	if index < 0 || index >= len(t.records) {
		return Record{}, false
	}
	return t.records[index], true
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Column returns the named field across all records.
// Records without the field contribute an empty string.
func (t *Table) Column(name string) []string {
	col := make([]string, len(t.records))
	for i, r := range t.records {
		col[i], _ = r.Get(name)
	}
	return col
}

// AddRecord appends a record and registers its field names.
// Returns the Table for method chaining.
func (t *Table) AddRecord(r Record) *Table {
	t.records = append(t.records, r)
	return t.AddFields(r.names...)
}

// NewRecord creates a new empty Record.
func NewRecord() Record {
	return Record{}
}

// Get returns the value of the named field.
// Returns ("", false) if the record has no such field.
func (r Record) Get(name string) (string, bool) {
	for i, n := range r.names {
		if n == name {
			return r.values[i], true
		}
	}
	return "", false
}

// Set returns a copy of the record with name set to value. An existing
// field keeps its position.
func (r Record) Set(name, value string) Record {
	out := Record{
		names:  make([]string, len(r.names), len(r.names)+1),
		values: make([]string, len(r.values), len(r.values)+1),
	}
	copy(out.names, r.names)
	copy(out.values, r.values)
	for i, n := range out.names {
		if n == name {
			out.values[i] = value
			return out
		}
	}
	out.names = append(out.names, name)
	out.values = append(out.values, value)
	return out
}

// Names returns the field names in order.
func (r Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Values returns the field values in field order.
func (r Record) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.names)
}

// Map returns the record as a field name to value map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.names))
	for i, n := range r.names {
		if _, dup := m[n]; !dup {
			m[n] = r.values[i]
		}
	}
	return m
}

// sameNames reports whether a and b have identical field names in order.
func sameNames(a, b Record) bool {
	if len(a.names) != len(b.names) {
		return false
	}
	for i := range a.names {
		if a.names[i] != b.names[i] {
			return false
		}
	}
	return true
}
