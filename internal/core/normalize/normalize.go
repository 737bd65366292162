// Package normalize maps loosely typed content entries into catalog.ExternalProduct
//
// Normalize is total: missing or malformed fields degrade to absent values or defaults and
// never fail the batch.
package normalize

import (
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	ptime "github.com/RodrigoRozasV/contentful-products-api/internal/platform/time"
)

const (
	// UnknownID is used when the entry has no system id
	UnknownID = "unknown"
	// UnnamedProduct is used when no name candidate yields text
	UnnamedProduct = "Unnamed Product"
)

// NameFields are tried in order; the first non-empty string wins
var NameFields = []string{"productName", "name", "title"}

// Normalizer is safe for concurrent use
type Normalizer struct {
	now ptime.Clock
	log *logger.Logger
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithClock overrides the fallback timestamp source
func WithClock(c ptime.Clock) Option { return func(n *Normalizer) { n.now = c } }

// WithLogger overrides the logger used for metadata warnings
func WithLogger(l *logger.Logger) Option { return func(n *Normalizer) { n.log = l } }

// New returns a Normalizer using the system clock
func New(opts ...Option) *Normalizer {
	n := &Normalizer{now: ptime.System}
	for _, o := range opts {
		o(n)
	}
	if n.log == nil {
		n.log = logger.Named("normalize")
	}
	return n
}

// Normalize converts one raw entry
func (n *Normalizer) Normalize(e catalog.RawEntry) catalog.ExternalProduct {
	id := e.Sys.ID
	if id == "" {
		id = UnknownID
	}

	name, nameField := n.name(e.Fields)
	out := catalog.ExternalProduct{
		ID:          id,
		Name:        name,
		Category:    ExtractString(e.Fields["category"]).Ptr(),
		Price:       ExtractNumber(e.Fields["price"]).Ptr(),
		Description: ExtractString(e.Fields["description"]).Ptr(),
		CreatedAt:   n.timestamp(e.Sys.CreatedAt),
		UpdatedAt:   n.timestamp(e.Sys.UpdatedAt),
	}

	skip := map[string]struct{}{"category": {}, "price": {}, "description": {}}
	if nameField != "" {
		skip[nameField] = struct{}{}
	}
	out.Metadata = n.metadata(id, e, skip)
	return out
}

// name returns the first non-empty candidate and the field it came from
func (n *Normalizer) name(fields map[string]any) (string, string) {
	for _, f := range NameFields {
		if r := ExtractString(fields[f]); r.Found && r.Value != "" {
			return r.Value, f
		}
	}
	return UnnamedProduct, ""
}

func (n *Normalizer) timestamp(s string) time.Time {
	if s != "" {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t
		}
	}
	return n.now()
}
