// Package modkit provides module wiring and the shared dependency bundle
package modkit

import (
	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit/repokit"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/config"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store"

	"gorm.io/gorm"
)

// Deps holds the core dependencies passed to modules; exactly one of PG or Lite is set
// once the store is open
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	PG   repokit.TxRunner
	Lite *gorm.DB
}

// FromStore builds Deps over an open store
func FromStore(st *store.Store, log logger.Logger, cfg config.Conf) Deps {
	d := Deps{Log: log, Cfg: cfg}
	if st != nil {
		d.PG, d.Lite = st.PG, st.Lite
	}
	return d
}

// HasStore reports whether a backend is wired
func (d Deps) HasStore() bool { return d.PG != nil || d.Lite != nil }
