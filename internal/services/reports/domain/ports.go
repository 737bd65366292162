// Package domain holds the report contracts and result records
package domain

import (
	"context"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
)

// Repo is the read surface reports need from product storage
type Repo interface {
	CountTotal(ctx context.Context, includeDeleted bool) (int64, error)
	CountDeleted(ctx context.Context) (int64, error)
	CountByDateRange(ctx context.Context, r catalog.DateRange) (int64, error)
	CountWithPriceByDateRange(ctx context.Context, r catalog.DateRange) (int64, error)
	CountWithoutPriceByDateRange(ctx context.Context, r catalog.DateRange) (int64, error)
	ProductsByCategory(ctx context.Context) ([]catalog.CategoryAggregate, error)
}

// ServicePort is consumed by the command line
type ServicePort interface {
	Deleted(ctx context.Context) (DeletedReport, error)
	NonDeleted(ctx context.Context, in NonDeletedFilters) (NonDeletedReport, error)
	ByCategory(ctx context.Context) (CategoryReport, error)
}
