package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

type widget struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Config{
		Driver: DriverSQLite,
		Lite:   LiteConfig{Path: ":memory:", Models: []any{&widget{}}},
	}, WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })

	if s.Driver != DriverSQLite || s.Lite == nil || s.PG != nil {
		t.Fatalf("unexpected store %+v", s)
	}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if !s.Lite.Migrator().HasTable(&widget{}) {
		t.Fatalf("model was not migrated")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Config{Driver: "mysql"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpen_PGBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: DriverPostgres, PG: PGConfig{URL: "://nope"}})
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestGuardAndClose_Nil(t *testing.T) {
	var s *Store
	if s.Guard(context.Background()) == nil {
		t.Fatalf("Guard on nil store should fail")
	}
	if s.Close(context.Background()) != nil {
		t.Fatalf("Close on nil store should be a no-op")
	}
	if (&Store{}).Guard(context.Background()) != nil {
		t.Fatalf("empty store has nothing to guard")
	}
}
