package mmcif_test

import (
	"reflect"
	"testing"

	"github.com/shapestone/shape-mmcif/pkg/mmcif"
)

func TestNewDocument(t *testing.T) {
	doc := mmcif.NewDocument()
	if doc == nil {
		t.Fatal("NewDocument() returned nil")
	}
	if doc.Len() != 0 {
		t.Errorf("NewDocument().Len() = %d, want 0", doc.Len())
	}
	if doc.Name() != "" {
		t.Errorf("NewDocument().Name() = %q, want empty", doc.Name())
	}
	if _, ok := doc.Table("missing"); ok {
		t.Error("Table(missing) reported ok")
	}
}

func TestDocumentAddTable(t *testing.T) {
	doc := mmcif.NewDocument().SetName("demo")

	a := doc.AddTable("a")
	b := doc.AddTable("b")
	if again := doc.AddTable("a"); again != a {
		t.Error("AddTable() of an existing name should return the same table")
	}

	if got, want := doc.TableNames(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TableNames() = %v, want %v", got, want)
	}
	tables := doc.Tables()
	if len(tables) != 2 || tables[0] != a || tables[1] != b {
		t.Errorf("Tables() = %v", tables)
	}
	if doc.Name() != "demo" {
		t.Errorf("Name() = %q, want demo", doc.Name())
	}
}

func TestRecordSet(t *testing.T) {
	base := mmcif.NewRecord().Set("a", "1").Set("b", "2")
	changed := base.Set("a", "9")

	if got, _ := base.Get("a"); got != "1" {
		t.Errorf("Set() modified the original record: a = %q", got)
	}
	if got, _ := changed.Get("a"); got != "9" {
		t.Errorf("changed a = %q, want 9", got)
	}
	if got, want := changed.Names(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got, want := changed.Values(), []string{"9", "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if changed.Len() != 2 {
		t.Errorf("Len() = %d, want 2", changed.Len())
	}
	if _, ok := changed.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
}

func TestRecordSet_SharedBacking(t *testing.T) {
	base := mmcif.NewRecord().Set("a", "1")
	x := base.Set("x", "x")
	y := base.Set("y", "y")

	if got, want := x.Names(), []string{"a", "x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("x.Names() = %v, want %v", got, want)
	}
	if got, want := y.Names(), []string{"a", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("y.Names() = %v, want %v", got, want)
	}
}

func TestTableRecords(t *testing.T) {
	table := mmcif.NewDocument().AddTable("atom").
		AddRecord(mmcif.NewRecord().Set("id", "1").Set("type", "N")).
		AddRecord(mmcif.NewRecord().Set("id", "2").Set("charge", "-1"))

	if table.Name() != "atom" {
		t.Errorf("Name() = %q", table.Name())
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if got, want := table.Fields(), []string{"id", "type", "charge"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if got, want := table.Column("type"), []string{"N", ""}; !reflect.DeepEqual(got, want) {
		t.Errorf("Column(type) = %v, want %v", got, want)
	}
	if _, ok := table.Record(2); ok {
		t.Error("Record(2) reported ok")
	}
	if _, ok := table.Record(-1); ok {
		t.Error("Record(-1) reported ok")
	}

	records := table.Records()
	records[0] = mmcif.NewRecord()
	if first, _ := table.Record(0); first.Len() != 2 {
		t.Error("Records() must return a copy")
	}
}

func TestTableAddFields(t *testing.T) {
	table := mmcif.NewDocument().AddTable("t").AddFields("a", "b", "a")
	if got, want := table.Fields(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}

func TestDocumentMap(t *testing.T) {
	doc := mustParse(t, "_a.x 1\n#\nloop_\n_b.y\n2\n3")
	want := map[string][]map[string]string{
		"a": {{"x": "1"}},
		"b": {{"y": "2"}, {"y": "3"}},
	}
	if got := doc.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestParsedEmptyTable(t *testing.T) {
	doc := mustParse(t, "loop_\n_cat.a\n_cat.b\n#")
	cat := mustTable(t, doc, "cat")
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
	if got, want := cat.Fields(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}
