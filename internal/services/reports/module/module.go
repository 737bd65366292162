// Package module implements the reports module
package module

import (
	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit"
	mmodule "github.com/RodrigoRozasV/contentful-products-api/internal/modkit/module"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/reports/domain"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/reports/service"
)

// Ports exposed by the reports module
type Ports struct {
	Service domain.ServicePort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the reports module over the products module's repository port
func New(deps modkit.Deps, products mmodule.Module) *Module {
	r := mmodule.MustPortsOf[domain.Repo](products)
	return &Module{deps: deps, ports: Ports{Service: service.New(r)}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "reports" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
