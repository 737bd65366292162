package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MetaValue is a closed sum: Scalar, Ref, List or Object
type MetaValue interface{ isMetaValue() }

// Scalar holds a string, float64, bool or nil
type Scalar struct{ V any }

// Ref is a linked reference reduced to its id and type
type Ref struct {
	ID   string
	Type string
}

// List holds Scalar and Ref elements
type List []MetaValue

// Object holds the directly primitive sub-fields of a nested value
type Object map[string]Scalar

func (Scalar) isMetaValue() {}
func (Ref) isMetaValue()    {}
func (List) isMetaValue()   {}
func (Object) isMetaValue() {}

// Metadata is the flattened, schema-free part of a product
type Metadata map[string]MetaValue

// Plain converts m to JSON-ready maps and slices
func (m Metadata) Plain() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plain(v)
	}
	return out
}

func plain(v MetaValue) any {
	switch x := v.(type) {
	case Scalar:
		return x.V
	case Ref:
		r := map[string]any{"id": x.ID}
		if x.Type != "" {
			r["type"] = x.Type
		}
		return r
	case List:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	case Object:
		out := make(map[string]any, len(x))
		for k, s := range x {
			out[k] = s.V
		}
		return out
	}
	return nil
}

// MarshalJSON writes m as a plain JSON object
func (m Metadata) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(m.Plain())
}

// UnmarshalJSON reads a plain JSON object: top-level objects become Object and objects
// inside arrays become Ref
func (m *Metadata) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}
	out := make(Metadata, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case []any:
			l := make(List, 0, len(x))
			for _, e := range x {
				if obj, ok := e.(map[string]any); ok {
					id, _ := obj["id"].(string)
					typ, _ := obj["type"].(string)
					l = append(l, Ref{ID: id, Type: typ})
					continue
				}
				l = append(l, Scalar{V: e})
			}
			out[k] = l
		case map[string]any:
			o := make(Object, len(x))
			for sk, sv := range x {
				switch sv.(type) {
				case map[string]any, []any:
				default:
					o[sk] = Scalar{V: sv}
				}
			}
			out[k] = o
		default:
			out[k] = Scalar{V: x}
		}
	}
	*m = out
	return nil
}

// Value stores m as JSON text; nil metadata is NULL
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads JSON text or bytes written by Value
func (m *Metadata) Scan(src any) error {
	switch x := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		if len(x) == 0 {
			*m = nil
			return nil
		}
		return m.UnmarshalJSON(x)
	case string:
		if x == "" {
			*m = nil
			return nil
		}
		return m.UnmarshalJSON([]byte(x))
	}
	return fmt.Errorf("catalog: cannot scan %T into Metadata", src)
}
