// Package service contains the sync workflow and its scheduler
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	ptime "github.com/RodrigoRozasV/contentful-products-api/internal/platform/time"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/sync/domain"
)

// Svc fetches, normalizes and saves the external catalog
type Svc struct {
	Source domain.Source
	Norm   domain.Normalizer
	Writer domain.Writer

	now   ptime.Clock
	newID func() string
}

// Option configures Svc
type Option func(*Svc)

// WithClock overrides the batch timestamp source
func WithClock(c ptime.Clock) Option { return func(s *Svc) { s.now = c } }

// WithRunID overrides the run id generator
func WithRunID(fn func() string) Option { return func(s *Svc) { s.newID = fn } }

// New constructs the sync service
func New(src domain.Source, n domain.Normalizer, w domain.Writer, opts ...Option) *Svc {
	if src == nil {
		panic("sync.Service requires a non nil Source")
	}
	if n == nil {
		panic("sync.Service requires a non nil Normalizer")
	}
	if w == nil {
		panic("sync.Service requires a non nil Writer")
	}
	s := &Svc{
		Source: src,
		Norm:   n,
		Writer: w,
		now:    ptime.System,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Execute runs one sync. Fetch and save errors are returned unchanged; a failed fetch
// saves nothing and an empty fetch saves an empty batch.
func (s *Svc) Execute(ctx context.Context) error {
	ctx = logger.WithRun(ctx, s.newID())
	log := logger.C(ctx)
	start := time.Now()

	log.Info().Msg("sync started")

	entries, err := s.Source.FetchEntries(ctx)
	if err != nil {
		log.Error().Err(err).Msg("sync fetch failed")
		return err
	}

	now := s.now()
	products := make([]catalog.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, s.Norm.Normalize(e).ToProduct(now))
	}

	if err := s.Writer.SaveMany(ctx, products); err != nil {
		log.Error().Err(err).Int("products", len(products)).Msg("sync save failed")
		return err
	}

	log.Info().
		Int("products", len(products)).
		Dur("took", time.Since(start)).
		Msg("sync finished")
	return nil
}
