package module

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit"
	mmodule "github.com/RodrigoRozasV/contentful-products-api/internal/modkit/module"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store/lite"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/testkit"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/domain"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/repo"
)

func TestNew_WiresLiteBackend(t *testing.T) {
	db, err := lite.Open(context.Background(), lite.Config{Path: ":memory:"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("lite.Open: %v", err)
	}
	if err := db.AutoMigrate(repo.Models()...); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	m := New(modkit.Deps{Log: zerolog.Nop(), Lite: db})
	if m.Name() != "products" {
		t.Fatalf("name %q", m.Name())
	}

	svc := mmodule.MustPortsOf[domain.ServicePort](m)
	page, err := svc.List(context.Background(), domain.ListInput{Page: 1, Limit: 5})
	if err != nil || page.Meta.Total != 0 {
		t.Fatalf("List on empty store: %+v %v", page, err)
	}
	if _, ok := mmodule.PortsOf[domain.Repository](m); !ok {
		t.Fatalf("repo port missing")
	}
}

func TestNew_PanicsWithoutStore(t *testing.T) {
	testkit.MustPanic(t, func() { New(modkit.Deps{}) })
}
