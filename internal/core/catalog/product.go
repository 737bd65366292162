package catalog

import (
	"time"

	pstrings "github.com/RodrigoRozasV/contentful-products-api/internal/platform/strings"
)

// Product is the canonical catalog record
type Product struct {
	ID          string
	Name        string
	Category    *string
	Price       *float64
	Description *string
	Metadata    Metadata

	CreatedAt time.Time
	UpdatedAt time.Time
	// DeletedAt marks a soft delete; once set it is never cleared
	DeletedAt *time.Time

	ContentfulCreatedAt *time.Time
	ContentfulUpdatedAt *time.Time
}

// IsDeleted reports whether the product was soft deleted
func (p Product) IsDeleted() bool { return p.DeletedAt != nil }

// HasPrice reports a strictly positive price
func (p Product) HasPrice() bool { return p.Price != nil && *p.Price > 0 }

// HasCategory reports a category with non blank content
func (p Product) HasCategory() bool { return p.Category != nil && !pstrings.Blank(*p.Category) }

// InPriceRange is false for unpriced products, otherwise r.Contains
func (p Product) InPriceRange(r PriceRange) bool {
	if !p.HasPrice() {
		return false
	}
	return r.Contains(p.Price)
}

// MatchesName is a case-insensitive substring match; an empty term matches everything
func (p Product) MatchesName(term string) bool {
	return pstrings.ContainsFold(p.Name, term)
}

// MatchesCategory is a case-insensitive substring match; an empty term matches everything
// and a product without category never matches a non-empty term
func (p Product) MatchesCategory(term string) bool {
	if term == "" {
		return true
	}
	if p.Category == nil {
		return false
	}
	return pstrings.ContainsFold(*p.Category, term)
}

// Matches applies every criterion of f
func (p Product) Matches(f ProductFilter) bool {
	if !p.MatchesName(f.Name) || !p.MatchesCategory(f.Category) {
		return false
	}
	if f.Price.Bounded() {
		return p.InPriceRange(f.Price)
	}
	return true
}
