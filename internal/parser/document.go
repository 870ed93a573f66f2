package parser

// Document is the parser's output: tables in order of first mention.
type Document struct {
	// Name is the name of the first data_ block, if any.
	Name   string
	Tables []*Table
	index  map[string]*Table
}

// Table is one named category with its records in source order.
type Table struct {
	Name string
	// Fields lists every field name mentioned for the table, in first-seen
	// order, including loop headers that never received a row.
	Fields  []string
	Records []Record
}

// Record is one row of a table. Names and Values are parallel slices.
type Record struct {
	Names  []string
	Values []string
}

func newDocument() *Document {
	return &Document{index: make(map[string]*Table)}
}

// Table returns the named table, or nil if it was never mentioned.
func (d *Document) Table(name string) *Table {
	return d.index[name]
}

// ensure returns the named table, creating it empty on first mention.
func (d *Document) ensure(name string) *Table {
	if t, ok := d.index[name]; ok {
		return t
	}
	t := &Table{Name: name}
	d.index[name] = t
	d.Tables = append(d.Tables, t)
	return t
}

func (t *Table) addField(name string) {
	for _, f := range t.Fields {
		if f == name {
			return
		}
	}
	t.Fields = append(t.Fields, name)
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.Names)
}

// Get returns the value for name.
func (r Record) Get(name string) (string, bool) {
	for i, n := range r.Names {
		if n == name {
			return r.Values[i], true
		}
	}
	return "", false
}

// set assigns name, overwriting an earlier assignment in place.
func (r *Record) set(name, value string) {
	for i, n := range r.Names {
		if n == name {
			r.Values[i] = value
			return
		}
	}
	r.Names = append(r.Names, name)
	r.Values = append(r.Values, value)
}
