// Package domain holds the product catalog contracts shared by repositories and services
package domain

import (
	"context"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
)

// Repository is the persistence contract for products. Every count except
// CountTotal(true) and CountDeleted ignores soft-deleted rows; date ranges apply to the
// system created_at, inclusive on both ends.
type Repository interface {
	// SaveMany upserts by id, replacing every column except deleted_at
	SaveMany(ctx context.Context, products []catalog.Product) error
	// FindByID returns perr.ErrNotFound for unknown or soft-deleted ids
	FindByID(ctx context.Context, id string) (catalog.Product, error)
	// FindAll orders by created_at desc then id
	FindAll(ctx context.Context, p catalog.Pagination, f catalog.ProductFilter) ([]catalog.Product, int64, error)
	// SoftDelete stamps deleted_at; perr.ErrNotFound when no live row matched
	SoftDelete(ctx context.Context, id string) error

	CountTotal(ctx context.Context, includeDeleted bool) (int64, error)
	CountDeleted(ctx context.Context) (int64, error)
	CountByDateRange(ctx context.Context, r catalog.DateRange) (int64, error)
	CountWithPriceByDateRange(ctx context.Context, r catalog.DateRange) (int64, error)
	CountWithoutPriceByDateRange(ctx context.Context, r catalog.DateRange) (int64, error)
	// ProductsByCategory groups live rows with a category, by count desc then category
	ProductsByCategory(ctx context.Context) ([]catalog.CategoryAggregate, error)
}

// ServicePort is consumed by the command line and other modules
type ServicePort interface {
	List(ctx context.Context, in ListInput) (Page, error)
	Get(ctx context.Context, id string) (catalog.Product, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
