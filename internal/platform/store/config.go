package store

import "time"

// Config selects the backend and carries per backend settings
type Config struct {
	AppName string
	Driver  string

	PG   PGConfig
	Lite LiteConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the boot ping loop (default 20)
	ConnectRetries int
	// PingTimeout bounds each boot ping (default 3s)
	PingTimeout time.Duration
}

// LiteConfig configures the embedded sqlite file
type LiteConfig struct {
	Path        string
	LogSQL      bool
	SlowQueryMs int
	// Models are auto-migrated right after open
	Models []any
}
