package normalize

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
)

// metadata flattens every field not in skip, then merges the system fields. A panic while
// classifying a field stops the walk but keeps what was collected so far.
func (n *Normalizer) metadata(id string, e catalog.RawEntry, skip map[string]struct{}) catalog.Metadata {
	meta := catalog.Metadata{}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		if _, ok := skip[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	func() {
		defer func() {
			if r := recover(); r != nil {
				n.log.Warn().
					Str("product_id", id).
					Str("panic", fmt.Sprint(r)).
					Msg("metadata flattening aborted")
			}
		}()
		for _, k := range keys {
			flattenField(meta, k, e.Fields[k])
		}
	}()

	if e.Sys.ID != "" {
		meta["contentfulId"] = catalog.Scalar{V: e.Sys.ID}
	}
	if e.Sys.Revision != 0 {
		meta["revision"] = catalog.Scalar{V: float64(e.Sys.Revision)}
	}
	if e.Sys.Locale != "" {
		meta["locale"] = catalog.Scalar{V: e.Sys.Locale}
	}
	if ct := e.Sys.ContentType; ct != nil && ct.Sys.ID != "" {
		meta["contentType"] = catalog.Scalar{V: ct.Sys.ID}
	}
	return meta
}

// flattenField writes the metadata keys produced by one field
func flattenField(meta catalog.Metadata, key string, v any) {
	if s, ok := primitive(v); ok {
		meta[key] = s
		return
	}
	switch x := v.(type) {
	case []any:
		l := make(catalog.List, 0, len(x))
		for _, item := range x {
			l = append(l, listElement(item))
		}
		meta[key] = l
	case map[string]any:
		if ref, ok := asRef(x); ok {
			meta[key+"Id"] = catalog.Scalar{V: ref.ID}
			if ref.Type != "" {
				meta[key+"Type"] = catalog.Scalar{V: ref.Type}
			}
			return
		}
		obj := catalog.Object{}
		for sk, sv := range x {
			if s, ok := primitive(sv); ok {
				obj[sk] = s
			}
		}
		if len(obj) > 0 {
			meta[key] = obj
		}
	default:
		meta[key] = catalog.Scalar{V: compactJSON(v)}
	}
}

func listElement(item any) catalog.MetaValue {
	if s, ok := primitive(item); ok {
		return s
	}
	if obj, ok := item.(map[string]any); ok {
		if ref, ok := asRef(obj); ok {
			return ref
		}
	}
	return catalog.Scalar{V: compactJSON(item)}
}

// primitive accepts nil, strings, booleans and numbers; numbers become float64
func primitive(v any) (catalog.Scalar, bool) {
	switch x := v.(type) {
	case nil:
		return catalog.Scalar{}, true
	case string, bool:
		return catalog.Scalar{V: x}, true
	}
	if f, ok := asFloat(v); ok {
		return catalog.Scalar{V: f}, true
	}
	return catalog.Scalar{}, false
}

// asRef recognizes a linked reference: an object whose sys.id is a non-empty string
func asRef(obj map[string]any) (catalog.Ref, bool) {
	sys, ok := obj["sys"].(map[string]any)
	if !ok {
		return catalog.Ref{}, false
	}
	id, _ := sys["id"].(string)
	if id == "" {
		return catalog.Ref{}, false
	}
	typ, _ := sys["type"].(string)
	return catalog.Ref{ID: id, Type: typ}, true
}

// compactJSON renders values with no metadata shape of their own
func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
