// Package mmcif provides conversion from Documents to Shape AST nodes and JSON.
package mmcif

import (
	"bytes"
	"encoding/json"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ToAST converts a Document to Shape's unified AST representation.
//
// For mmCIF, this produces:
//   - *ast.ObjectNode (document) keyed by table name
//   - *ast.ArrayDataNode (table) of records
//   - *ast.ObjectNode (record) keyed by field name
//   - *ast.LiteralNode (value) holding a string
//
// Object nodes are unordered; use the Document API where table or field
// order matters.
//
// Example:
//
//	doc, _ := mmcif.Parse("_entry.id 1ABC")
//	node := mmcif.ToAST(doc)
func ToAST(doc *Document) ast.SchemaNode {
	pos := ast.ZeroPosition()
	if doc == nil {
		return ast.NewObjectNode(map[string]ast.SchemaNode{}, pos)
	}

	tables := make(map[string]ast.SchemaNode, len(doc.tables))
	for _, t := range doc.tables {
		tables[t.name] = TableToAST(t)
	}
	return ast.NewObjectNode(tables, pos)
}

// TableToAST converts one Table to an *ast.ArrayDataNode of record objects.
func TableToAST(t *Table) *ast.ArrayDataNode {
	pos := ast.ZeroPosition()
	records := make([]ast.SchemaNode, len(t.records))
	for i, r := range t.records {
		fields := make(map[string]ast.SchemaNode, len(r.names))
		for j, name := range r.names {
			if _, dup := fields[name]; !dup {
				fields[name] = ast.NewLiteralNode(r.values[j], pos)
			}
		}
		records[i] = ast.NewObjectNode(fields, pos)
	}
	return ast.NewArrayDataNode(records, pos)
}

// MarshalJSON encodes the Document as a JSON object of tables, keeping
// table and field order:
//
//	{"entry":[{"id":"1ABC"}],"atom":[{"id":"1","type":"N"}]}
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range d.tables {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, t.name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		data, err := t.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the Table as a JSON array of records.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range t.records {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the Record as a JSON object in field order.
// A repeated field name keeps its first value.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	seen := make(map[string]bool, len(r.names))
	buf.WriteByte('{')
	for i, name := range r.names {
		if seen[name] {
			continue
		}
		if len(seen) > 0 {
			buf.WriteByte(',')
		}
		seen[name] = true
		if err := writeJSONString(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, r.values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
