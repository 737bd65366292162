package catalog

import (
	"strings"
	"time"

	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
)

// DateRange is an optional, inclusive [start, end] window over timestamps
type DateRange struct {
	start *time.Time
	end   *time.Time
}

// NewDateRange fails when start is after end
func NewDateRange(start, end *time.Time) (DateRange, error) {
	if start != nil && end != nil && start.After(*end) {
		return DateRange{}, perr.WithField(perr.Validationf("startDate cannot be after endDate"), "startDate")
	}
	return DateRange{start: copyTime(start), end: copyTime(end)}, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateRange parses optional start and end strings; blanks are open sides. Inputs
// without a zone are read as UTC.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := parseDate("startDate", start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := parseDate("endDate", end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func parseDate(field, in string) (*time.Time, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, in, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, perr.WithField(perr.Validationf("%s must be an ISO 8601 date, got %q", field, in), field)
}

// Start returns the lower bound, nil when open
func (r DateRange) Start() *time.Time { return copyTime(r.start) }

// End returns the upper bound, nil when open
func (r DateRange) End() *time.Time { return copyTime(r.end) }

// Bounded reports whether either side is set
func (r DateRange) Bounded() bool { return r.start != nil || r.end != nil }

// Contains is false only when t is strictly before start or strictly after end
func (r DateRange) Contains(t time.Time) bool {
	if r.start != nil && t.Before(*r.start) {
		return false
	}
	if r.end != nil && t.After(*r.end) {
		return false
	}
	return true
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
