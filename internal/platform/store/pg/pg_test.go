package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ParseError(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestOpen_NewPoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})

	_, err := Open(context.Background(), Config{URL: "postgres://u:p@h:5432/db?sslmode=disable"}, nil, nil)
	if err == nil {
		t.Fatalf("expected newPool error, got nil")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	fake := &pgxpool.Pool{}
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return fake, nil
	})

	mutated := false
	cfg := Config{URL: "postgres://u:p@h:5432/db?sslmode=disable", MaxConns: 4, SlowMs: 500, AppName: "products"}
	p, err := Open(context.Background(), cfg, nil, func(*pgxpool.Config) { mutated = true })
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !mutated {
		t.Fatalf("mutator was not invoked")
	}
	if seen.MaxConns != 4 {
		t.Fatalf("MaxConns = %d, want 4", seen.MaxConns)
	}
	if seen.ConnConfig.RuntimeParams["application_name"] != "products" {
		t.Fatalf("application_name not set")
	}
	if p.SlowMs != 500 || p.Pool != fake {
		t.Fatalf("unexpected PG %+v", p)
	}
}

func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var p *PG
	p.Close()
	(&PG{}).Close()
}
