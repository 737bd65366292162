package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/testkit"
)

type countingRunner struct {
	n      atomic.Int32
	err    error
	cancel context.CancelFunc
	stopAt int32
}

func (r *countingRunner) Execute(context.Context) error {
	if r.n.Add(1) >= r.stopAt && r.cancel != nil {
		r.cancel()
	}
	return r.err
}

func TestScheduler_RunOnStartThenTicks(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r := &countingRunner{err: errors.New("flaky"), cancel: cancel, stopAt: 3}
	s := NewScheduler(r, 5*time.Millisecond, true)

	err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want canceled, got %v", err)
	}
	if r.n.Load() != 3 {
		t.Fatalf("runs %d, failures should not stop the loop", r.n.Load())
	}
}

func TestScheduler_NoRunOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &countingRunner{}
	if err := NewScheduler(r, time.Hour, false).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want canceled, got %v", err)
	}
	if r.n.Load() != 0 {
		t.Fatalf("no run expected, got %d", r.n.Load())
	}
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(&countingRunner{}, 0, false)
	if s.Interval != DefaultInterval {
		t.Fatalf("interval %v", s.Interval)
	}
	testkit.MustPanic(t, func() { NewScheduler(nil, time.Second, false) })
}
