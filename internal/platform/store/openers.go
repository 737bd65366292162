package store

import (
	"context"
	"fmt"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store/lite"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store/pg"

	"gorm.io/gorm"
)

var sleep = time.Sleep

// openPG opens the pool, waits for it to answer pings, then wraps it with the sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	maxAttempts := cfg.PG.ConnectRetries
	if maxAttempts <= 0 {
		maxAttempts = 20
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	const (
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()

		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		s.Log.Debug().Int("attempt", i+1).Err(lastErr).Msg("postgres not ready")
		sleep(backoff)
		backoff = min(backoff*2, backoffCeiling)
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// openLite opens the sqlite file through gorm and migrates the registered models
func openLite(ctx context.Context, cfg Config, s *Store) (*gorm.DB, error) {
	db, err := lite.Open(ctx, lite.Config{
		Path:   cfg.Lite.Path,
		SlowMs: cfg.Lite.SlowQueryMs,
		LogSQL: cfg.Lite.LogSQL,
	}, s.Log)
	if err != nil {
		return nil, err
	}
	if len(cfg.Lite.Models) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(cfg.Lite.Models...); err != nil {
			return nil, fmt.Errorf("sqlite migrate: %w", err)
		}
	}
	return db, nil
}
