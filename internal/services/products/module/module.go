// Package module implements the products service module
package module

import (
	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/domain"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/repo"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/service"
)

// Ports exposed by the products module
type Ports struct {
	Service domain.ServicePort
	Repo    domain.Repository
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the products module over whichever backend deps carries
func New(deps modkit.Deps) *Module {
	if !deps.HasStore() {
		panic("products module: deps carry no store backend")
	}
	r := repo.For(deps.PG, deps.Lite)
	return &Module{
		deps:  deps,
		ports: Ports{Service: service.New(r), Repo: r},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "products" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
