package cli

import (
	"context"
	"strings"
	"sync"

	"github.com/RodrigoRozasV/contentful-products-api/internal/adapters/ingest/contentful"
	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit"
	mmodule "github.com/RodrigoRozasV/contentful-products-api/internal/modkit/module"
	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit/repokit"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/config"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/validate"
	productsdom "github.com/RodrigoRozasV/contentful-products-api/internal/services/products/domain"
	productsmod "github.com/RodrigoRozasV/contentful-products-api/internal/services/products/module"
	productsrepo "github.com/RodrigoRozasV/contentful-products-api/internal/services/products/repo"
	reportsdom "github.com/RodrigoRozasV/contentful-products-api/internal/services/reports/domain"
	reportsmod "github.com/RodrigoRozasV/contentful-products-api/internal/services/reports/module"
	syncmod "github.com/RodrigoRozasV/contentful-products-api/internal/services/sync/module"
)

// Runtime hands commands their ports; backends open on first use
type Runtime interface {
	Products(ctx context.Context) (productsdom.ServicePort, error)
	Reports(ctx context.Context) (reportsdom.ServicePort, error)
	Sync(ctx context.Context, overrides syncmod.Options) (syncmod.Ports, error)
	Close(ctx context.Context) error
}

// EnvRuntime wires modules from environment configuration
type EnvRuntime struct {
	cfg config.Conf
	log logger.Logger

	once     sync.Once
	mu       sync.Mutex
	closed   bool
	st       *store.Store
	products mmodule.Module
	err      error
}

// NewEnvRuntime returns a Runtime reading STORE_*, SERVICE_PGSQL_*, SQLITE_* and CONTENTFUL_*
func NewEnvRuntime(cfg config.Conf, log logger.Logger) *EnvRuntime {
	return &EnvRuntime{cfg: cfg, log: log}
}

// StoreConfig builds the store config for the driver named by STORE_DRIVER; a bad driver
// or a missing postgres url is a validation error
func StoreConfig(cfg config.Conf) (store.Config, error) {
	driver := strings.ToLower(cfg.MayString("STORE_DRIVER", store.DriverPostgres))
	if err := validate.Var("STORE_DRIVER", driver, "oneof=postgres sqlite"); err != nil {
		return store.Config{}, err
	}
	sc := store.Config{AppName: "products", Driver: driver}

	switch driver {
	case store.DriverSQLite:
		lc := cfg.Prefix("SQLITE_")
		sc.Lite = store.LiteConfig{
			Path:        lc.MayString("PATH", "products.db"),
			LogSQL:      lc.MayBool("LOG_SQL", false),
			SlowQueryMs: lc.MayInt("SLOW_MS", 500),
			Models:      productsrepo.Models(),
		}
	default:
		pg := cfg.Prefix("SERVICE_PGSQL_")
		if !pg.Has("DBURL") {
			return store.Config{}, perr.WithField(
				perr.Validationf("%s is required when STORE_DRIVER is postgres", pg.Key("DBURL")),
				pg.Key("DBURL"),
			)
		}
		sc.PG = store.PGConfig{
			URL:         pg.MayString("DBURL", ""),
			MaxConns:    int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pg.MayInt("SLOW_MS", 500),
			LogSQL:      pg.MayBool("LOG_SQL", false),
		}
	}
	return sc, nil
}

func (r *EnvRuntime) open(ctx context.Context) (mmodule.Module, error) {
	r.once.Do(func() {
		sc, err := StoreConfig(r.cfg)
		if err != nil {
			r.err = err
			return
		}
		st, err := store.Open(ctx, sc, store.WithLogger(r.log))
		if err != nil {
			r.err = perr.Wrap(err, perr.ErrorCodeUnavailable, "open store")
			return
		}
		if err := repokit.Guard(ctx, st); err != nil {
			_ = st.Close(ctx)
			r.err = err
			return
		}
		r.st = st
		r.products = productsmod.New(modkit.FromStore(st, r.log, r.cfg))
	})
	return r.products, r.err
}

// Products returns the catalog service
func (r *EnvRuntime) Products(ctx context.Context) (productsdom.ServicePort, error) {
	m, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	return mmodule.MustPortsOf[productsdom.ServicePort](m), nil
}

// Reports returns the reports service
func (r *EnvRuntime) Reports(ctx context.Context) (reportsdom.ServicePort, error) {
	m, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	deps := modkit.FromStore(r.st, r.log, r.cfg)
	return mmodule.MustPortsOf[reportsdom.ServicePort](reportsmod.New(deps, m)), nil
}

// Sync returns the sync runner and scheduler backed by the Contentful client
func (r *EnvRuntime) Sync(ctx context.Context, overrides syncmod.Options) (syncmod.Ports, error) {
	client, err := contentful.NewClient(contentful.OptionsFromEnv())
	if err != nil {
		return syncmod.Ports{}, err
	}
	m, err := r.open(ctx)
	if err != nil {
		return syncmod.Ports{}, err
	}
	deps := modkit.FromStore(r.st, r.log, r.cfg)
	return syncmod.New(deps, client, m, overrides).Ports().(syncmod.Ports), nil
}

// Close releases the store when it was opened; later calls are no-ops
func (r *EnvRuntime) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.st == nil || r.closed {
		return nil
	}
	r.closed = true
	return r.st.Close(ctx)
}
