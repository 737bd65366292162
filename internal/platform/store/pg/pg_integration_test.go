//go:build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store/pg/pgtest"
)

func TestOpen_Integration(t *testing.T) {
	dsn := pgtest.Start(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := Open(ctx, Config{URL: dsn, MaxConns: 2, AppName: "products-it"}, nil, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	var app string
	if err := p.Pool.QueryRow(ctx, "select current_setting('application_name')").Scan(&app); err != nil {
		t.Fatalf("query: %v", err)
	}
	if app != "products-it" {
		t.Fatalf("application_name = %q", app)
	}
}
