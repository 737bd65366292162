// Package store opens the configured persistence backend: Postgres through pgx or an
// embedded SQLite file through gorm
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"

	"gorm.io/gorm"
)

// Driver names accepted by STORE_DRIVER
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store is the facade for the open backend; exactly one of PG or Lite is set after Open
type Store struct {
	// Log is the logger used by subclients
	Log logger.Logger

	// Driver is the backend that was opened
	Driver string

	// PG is the postgres sql seam, nil unless Driver is postgres
	PG TxRunner

	// Lite is the gorm handle, nil unless Driver is sqlite
	Lite *gorm.DB
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes iteration and scan over a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports the outcome of a write
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store for cfg.Driver
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	switch cfg.Driver {
	case DriverPostgres, "":
		pgClient, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.Driver, s.PG = DriverPostgres, pgClient
	case DriverSQLite:
		db, err := openLite(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.Driver, s.Lite = DriverSQLite, db
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}

	s.Log.Info().Str("driver", s.Driver).Msg("store opened")
	return s, nil
}

// Guard pings the open backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if p, ok := s.PG.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("pg: %w", err))
		}
	}
	if s.Lite != nil {
		sqlDB, err := s.Lite.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("sqlite: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close releases the open backend; nil backends are ignored
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	if c, ok := s.PG.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	if s.Lite != nil {
		if sqlDB, err := s.Lite.DB(); err == nil {
			if e := sqlDB.Close(); e != nil {
				errs = append(errs, e)
			}
		}
	}
	return errors.Join(errs...)
}
