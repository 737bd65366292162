package module

import (
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/config"
)

// Options holds configuration settings for the sync module
type Options struct {
	Interval   time.Duration
	RunOnStart bool
}

// FromConfig reads the sync options with the CORE_SYNC_ prefix
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("CORE_SYNC_")
	return Options{
		Interval:   sf.MayDuration("INTERVAL", time.Hour),
		RunOnStart: sf.MayBool("RUN_ON_START", true),
	}
}
