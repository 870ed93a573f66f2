package mmcif_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-mmcif/pkg/mmcif"
)

func TestToAST(t *testing.T) {
	doc := mustParse(t, "_entry.id 1ABC\n#\nloop_\n_atom.id\n_atom.type\n1 N\n2 C\n")

	node := mmcif.ToAST(doc)
	if _, ok := node.(*ast.ObjectNode); !ok {
		t.Fatalf("ToAST() = %T, want *ast.ObjectNode", node)
	}

	atoms, _ := doc.Table("atom")
	arr := mmcif.TableToAST(atoms)
	if arr.Len() != 2 {
		t.Fatalf("TableToAST().Len() = %d, want 2", arr.Len())
	}
	for i, elem := range arr.Elements() {
		if _, ok := elem.(*ast.ObjectNode); !ok {
			t.Errorf("record %d = %T, want *ast.ObjectNode", i, elem)
		}
	}
}

func TestToAST_Nil(t *testing.T) {
	if _, ok := mmcif.ToAST(nil).(*ast.ObjectNode); !ok {
		t.Error("ToAST(nil) should return an empty *ast.ObjectNode")
	}
}

func TestMarshalJSON(t *testing.T) {
	doc := mustParse(t, "_z.id 1\n#\nloop_\n_a.b\n_a.a\n'x y' \"q\"\n2 3\n")

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"z":[{"id":"1"}],"a":[{"b":"x y","a":"q"},{"b":"2","a":"3"}]}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back map[string][]map[string]string
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(back, doc.Map()) {
		t.Errorf("decoded JSON = %v, want %v", back, doc.Map())
	}
}

func TestMarshalJSON_Escaping(t *testing.T) {
	doc := mmcif.NewDocument()
	doc.AddTable("t").AddRecord(mmcif.NewRecord().Set("v", `say "hi" <b>`))

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	var back map[string][]map[string]string
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	if got := back["t"][0]["v"]; got != `say "hi" <b>` {
		t.Errorf("value = %q", got)
	}
}

func TestMarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(mmcif.NewDocument())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("json.Marshal(empty) = %s, want {}", data)
	}
}
