// Package lite opens the embedded sqlite database through gorm, logging through zerolog
package lite

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	pstrings "github.com/RodrigoRozasV/contentful-products-api/internal/platform/strings"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DriverName is the sqlite3 driver whose connections carry casefold(text), the Unicode case
// fold that postgres ILIKE and the catalog predicates agree with
const DriverName = "sqlite3_casefold"

var registerOnce sync.Once

func registerDriver() {
	registerOnce.Do(func() {
		sql.Register(DriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("casefold", pstrings.Fold, true)
			},
		})
	})
}

// Config configures the sqlite handle
type Config struct {
	// Path is a file path or ":memory:"
	Path   string
	SlowMs int
	LogSQL bool
}

// Open opens path and pings it
func Open(ctx context.Context, cfg Config, log logger.Logger) (*gorm.DB, error) {
	path := cfg.Path
	if path == "" {
		path = "products.db"
	}
	registerDriver()
	db, err := gorm.Open(&sqlite.Dialector{DriverName: DriverName, DSN: path}, &gorm.Config{
		Logger:         newZLLogger(log, cfg),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one writer avoids SQLITE_BUSY, and keeps a :memory: database on a single connection
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// zlLogger adapts zerolog to gorm's logger interface
type zlLogger struct {
	log    zerolog.Logger
	level  gormlogger.LogLevel
	slow   time.Duration
	logSQL bool
}

func newZLLogger(root logger.Logger, cfg Config) gormlogger.Interface {
	slow := time.Duration(cfg.SlowMs) * time.Millisecond
	if cfg.SlowMs <= 0 {
		slow = 500 * time.Millisecond
	}
	return &zlLogger{
		log:    root.With().Str("component", "sqlite").Logger(),
		level:  gormlogger.Warn,
		slow:   slow,
		logSQL: cfg.LogSQL,
	}
}

func (l *zlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *zlLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info().Str("run_id", logger.RunID(ctx)).Msgf(msg, args...)
	}
}

func (l *zlLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn().Str("run_id", logger.RunID(ctx)).Msgf(msg, args...)
	}
}

func (l *zlLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error().Str("run_id", logger.RunID(ctx)).Msgf(msg, args...)
	}
}

// Trace logs failed and slow statements; every statement when LogSQL is on
func (l *zlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := elapsed >= l.slow

	var evt *zerolog.Event
	switch {
	case failed && l.level >= gormlogger.Error:
		evt = l.log.Warn().Err(err)
	case slow && l.level >= gormlogger.Warn:
		evt = l.log.Warn()
	case l.logSQL:
		evt = l.log.Info()
	default:
		return
	}
	sql, n := fc()
	if id := logger.RunID(ctx); id != "" {
		evt = evt.Str("run_id", id)
	}
	evt.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000.0).
		Bool("slow", slow).
		Int64("rows", n).
		Str("sql", sql).
		Msg("sqlite query")
}
