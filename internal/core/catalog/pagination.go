package catalog

import (
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/validate"
)

const (
	// DefaultPage is the first page
	DefaultPage = 1
	// MaxLimit is the largest page size
	MaxLimit = 5
)

// Pagination is a validated page window
type Pagination struct {
	page  int
	limit int
}

type paginationInput struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=5"`
}

// NewPagination fails with a validation error when page < 1 or limit is outside [1,5]
func NewPagination(page, limit int) (Pagination, error) {
	if err := validate.Struct(paginationInput{Page: page, Limit: limit}); err != nil {
		return Pagination{}, err
	}
	return Pagination{page: page, limit: limit}, nil
}

// DefaultPagination is page 1 with the maximum limit
func DefaultPagination() Pagination { return Pagination{page: DefaultPage, limit: MaxLimit} }

// Page returns the 1-based page number
func (p Pagination) Page() int { return p.page }

// Limit returns the page size
func (p Pagination) Limit() int { return p.limit }

// Skip returns the number of rows before this page
func (p Pagination) Skip() int { return (p.page - 1) * p.limit }

// TotalPages returns ceil(total/limit)
func (p Pagination) TotalPages(total int64) int {
	if p.limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(p.limit)
	return int((total + l - 1) / l)
}
