// Package domain holds the sync contracts
package domain

import (
	"context"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
)

// Source delivers the raw entries of the external catalog
type Source interface {
	FetchEntries(ctx context.Context) ([]catalog.RawEntry, error)
}

// Normalizer maps one raw entry; it never fails
type Normalizer interface {
	Normalize(e catalog.RawEntry) catalog.ExternalProduct
}

// Writer persists a whole batch in one call
type Writer interface {
	SaveMany(ctx context.Context, products []catalog.Product) error
}

// RunnerPort runs one sync
type RunnerPort interface {
	Execute(ctx context.Context) error
}

// SchedulerPort repeats syncs until ctx ends
type SchedulerPort interface {
	Run(ctx context.Context) error
}
