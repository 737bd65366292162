package catalog

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMetadata_JSONShape(t *testing.T) {
	m := Metadata{
		"color":    Scalar{V: "red"},
		"stock":    Scalar{V: 3.0},
		"featured": Scalar{V: true},
		"empty":    Scalar{V: nil},
		"tags":     List{Scalar{V: "a"}, Ref{ID: "asset1", Type: "Link"}, Ref{ID: "asset2"}},
		"dims":     Object{"w": Scalar{V: 10.0}},
		"brandId":  Scalar{V: "b1"},
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"color":    "red",
		"stock":    3.0,
		"featured": true,
		"empty":    nil,
		"tags":     []any{"a", map[string]any{"id": "asset1", "type": "Link"}, map[string]any{"id": "asset2"}},
		"dims":     map[string]any{"w": 10.0},
		"brandId":  "b1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("json shape\n got %#v\nwant %#v", got, want)
	}

	var back Metadata
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, m) {
		t.Fatalf("decoded metadata differs\n got %#v\nwant %#v", back, m)
	}
}

func TestMetadata_NilAndScan(t *testing.T) {
	var m Metadata
	b, _ := json.Marshal(m)
	if string(b) != "null" {
		t.Fatalf("nil metadata = %s", b)
	}
	if v, err := m.Value(); v != nil || err != nil {
		t.Fatalf("nil Value = %v, %v", v, err)
	}

	src := Metadata{"locale": Scalar{V: "en-US"}}
	v, err := src.Value()
	if err != nil {
		t.Fatal(err)
	}
	var dst Metadata
	if err := dst.Scan(v); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if dst["locale"] != (Scalar{V: "en-US"}) {
		t.Fatalf("scan lost value: %#v", dst)
	}
	if err := dst.Scan([]byte(`{"revision":2}`)); err != nil || dst["revision"] != (Scalar{V: 2.0}) {
		t.Fatalf("Scan bytes: %#v %v", dst, err)
	}
	if err := dst.Scan(nil); err != nil || dst != nil {
		t.Fatalf("Scan nil should clear")
	}
	if err := dst.Scan(42); err == nil {
		t.Fatalf("Scan int should fail")
	}
}
