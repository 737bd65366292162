package service

import (
	"context"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/sync/domain"
)

// DefaultInterval is the pause between scheduled syncs
const DefaultInterval = time.Hour

// Scheduler repeats a runner on a fixed interval. Failed runs are logged and the loop
// keeps going; it does not coordinate with manual runs.
type Scheduler struct {
	Runner     domain.RunnerPort
	Interval   time.Duration
	RunOnStart bool

	log *logger.Logger
}

// NewScheduler constructs a Scheduler; a non positive interval means DefaultInterval
func NewScheduler(r domain.RunnerPort, interval time.Duration, runOnStart bool) *Scheduler {
	if r == nil {
		panic("sync.Scheduler requires a non nil Runner")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		Runner:     r,
		Interval:   interval,
		RunOnStart: runOnStart,
		log:        logger.Named("sync.scheduler"),
	}
}

// Run blocks until ctx ends and returns ctx.Err()
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Info().
		Dur("interval", s.Interval).
		Bool("run_on_start", s.RunOnStart).
		Msg("sync scheduler started")

	if s.RunOnStart {
		s.tick(ctx)
	}

	t := time.NewTicker(s.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sync scheduler stopped")
			return ctx.Err()
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.Runner.Execute(ctx); err != nil {
		s.log.Warn().Err(err).Msg("scheduled sync failed")
	}
}
