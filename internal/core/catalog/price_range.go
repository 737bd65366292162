package catalog

import (
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/validate"
)

// PriceRange is an optional, inclusive [min, max] window over prices
type PriceRange struct {
	min *float64
	max *float64
}

type priceRangeInput struct {
	Min *float64 `json:"minPrice" validate:"omitempty,gte=0"`
	Max *float64 `json:"maxPrice" validate:"omitempty,gte=0"`
}

// NewPriceRange fails when a bound is negative or min > max
func NewPriceRange(minPrice, maxPrice *float64) (PriceRange, error) {
	if err := validate.Struct(priceRangeInput{Min: minPrice, Max: maxPrice}); err != nil {
		return PriceRange{}, err
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return PriceRange{}, perr.WithField(perr.Validationf("minPrice cannot be greater than maxPrice"), "minPrice")
	}
	return PriceRange{min: copyFloat(minPrice), max: copyFloat(maxPrice)}, nil
}

// Min returns the lower bound, nil when open
func (r PriceRange) Min() *float64 { return copyFloat(r.min) }

// Max returns the upper bound, nil when open
func (r PriceRange) Max() *float64 { return copyFloat(r.max) }

// Bounded reports whether either side is set
func (r PriceRange) Bounded() bool { return r.min != nil || r.max != nil }

// Contains reports inclusive membership. A nil price is outside any bounded range and
// inside the unbounded one.
func (r PriceRange) Contains(price *float64) bool {
	if price == nil {
		return !r.Bounded()
	}
	if r.min != nil && *price < *r.min {
		return false
	}
	if r.max != nil && *price > *r.max {
		return false
	}
	return true
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
