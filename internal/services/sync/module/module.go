// Package module implements the sync module
package module

import (
	"github.com/RodrigoRozasV/contentful-products-api/internal/core/normalize"
	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit"
	mmodule "github.com/RodrigoRozasV/contentful-products-api/internal/modkit/module"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/sync/domain"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/sync/service"
)

// Ports exposed by the sync module
type Ports struct {
	Runner    domain.RunnerPort
	Scheduler domain.SchedulerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the sync module. Products must expose a domain.Writer port; overrides
// with a non zero Interval win over CORE_SYNC_* config.
func New(deps modkit.Deps, src domain.Source, products mmodule.Module, overrides Options) *Module {
	if src == nil {
		panic("sync module: nil Source")
	}
	writer := mmodule.MustPortsOf[domain.Writer](products)

	opts := FromConfig(deps.Cfg)
	if overrides.Interval > 0 {
		opts.Interval = overrides.Interval
	}
	if overrides.RunOnStart {
		opts.RunOnStart = true
	}

	norm := normalize.New(normalize.WithLogger(logger.Named("normalize")))
	svc := service.New(src, norm, writer)

	return &Module{
		deps: deps,
		ports: Ports{
			Runner:    svc,
			Scheduler: service.NewScheduler(svc, opts.Interval, opts.RunOnStart),
		},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "sync" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
