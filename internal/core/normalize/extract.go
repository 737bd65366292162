package normalize

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Extraction is the tagged result of an extractor: Found reports presence, Value is only
// meaningful when Found
type Extraction[T any] struct {
	Value T
	Found bool
}

// Ptr returns &Value when found, nil otherwise
func (x Extraction[T]) Ptr() *T {
	if !x.Found {
		return nil
	}
	v := x.Value
	return &v
}

func found[T any](v T) Extraction[T] { return Extraction[T]{Value: v, Found: true} }

// Extractor inspects a value and either claims it or reports absent
type Extractor[T any] func(v any) Extraction[T]

// FirstOf runs chain in order and returns the first found result
func FirstOf[T any](v any, chain ...Extractor[T]) Extraction[T] {
	for _, ex := range chain {
		if r := ex(v); r.Found {
			return r
		}
	}
	return Extraction[T]{}
}

// stringChain is the fixed order for text coercion
var stringChain []Extractor[string]

// objectTextKeys are tried in order on nested objects
var objectTextKeys = []string{"text", "value", "title", "name"}

func init() {
	stringChain = []Extractor[string]{
		stringFromString,
		stringFromScalar,
		stringFromFirstElement,
		stringFromObject,
	}
}

// ExtractString coerces v to text: strings pass through, numbers and booleans are
// formatted, lists use their first element and objects their first truthy text-like key
func ExtractString(v any) Extraction[string] {
	if v == nil {
		return Extraction[string]{}
	}
	return FirstOf(v, stringChain...)
}

func stringFromString(v any) Extraction[string] {
	if s, ok := v.(string); ok {
		return found(s)
	}
	return Extraction[string]{}
}

func stringFromScalar(v any) Extraction[string] {
	if b, ok := v.(bool); ok {
		return found(strconv.FormatBool(b))
	}
	if f, ok := asFloat(v); ok {
		return found(formatNumber(f))
	}
	return Extraction[string]{}
}

func stringFromFirstElement(v any) Extraction[string] {
	l, ok := v.([]any)
	if !ok || len(l) == 0 {
		return Extraction[string]{}
	}
	return ExtractString(l[0])
}

func stringFromObject(v any) Extraction[string] {
	obj, ok := v.(map[string]any)
	if !ok {
		return Extraction[string]{}
	}
	for _, k := range objectTextKeys {
		if sub, ok := obj[k]; ok && truthy(sub) {
			// the first truthy key decides, even when it yields nothing
			return ExtractString(sub)
		}
	}
	return Extraction[string]{}
}

// leadingDecimal matches the numeric prefix a lenient float parser would accept
var leadingDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ExtractNumber coerces v to a finite float64: numbers pass through and strings
// contribute their leading decimal literal; anything else is absent
func ExtractNumber(v any) Extraction[float64] {
	return FirstOf[float64](v, numberFromNumber, numberFromString)
}

func numberFromNumber(v any) Extraction[float64] {
	if f, ok := asFloat(v); ok && finite(f) {
		return found(f)
	}
	return Extraction[float64]{}
}

func numberFromString(v any) Extraction[float64] {
	s, ok := v.(string)
	if !ok {
		return Extraction[float64]{}
	}
	m := leadingDecimal.FindString(strings.TrimLeftFunc(s, isLeadingSpace))
	if m == "" {
		return Extraction[float64]{}
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || !finite(f) {
		return Extraction[float64]{}
	}
	return found(f)
}

// asFloat accepts every Go numeric kind plus json.Number
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case nil, string, bool:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// formatNumber prints the shortest decimal form, switching to exponent form at 1e21
func formatNumber(f float64) string {
	if a := math.Abs(f); a >= 1e21 || (a != 0 && a < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// truthy is loose truth: nil, "", 0, NaN and false are falsy; any
// collection is truthy
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	}
	if f, ok := asFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// isLeadingSpace also skips the byte order mark
func isLeadingSpace(r rune) bool { return unicode.IsSpace(r) || r == '\ufeff' }
