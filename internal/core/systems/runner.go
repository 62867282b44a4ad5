package systems

import (
	"context"
	"time"

	"github.com/zeusync/rpsarena/internal/core/arena"
	"github.com/zeusync/rpsarena/internal/core/events/bus"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
)

// Stepper advances a simulation by exactly one tick.
type Stepper interface {
	Step() error
	Snapshot() arena.Snapshot
}

// Renderer consumes the snapshot produced after every tick.
type Renderer interface {
	Render(arena.Snapshot) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(arena.Snapshot) error

func (f RendererFunc) Render(s arena.Snapshot) error { return f(s) }

// TickSource delivers the cadence at which the runner steps.
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

type tickerSource struct{ t *time.Ticker }

// NewTicker returns a wall-clock tick source firing every d.
func NewTicker(d time.Duration) TickSource {
	return tickerSource{t: time.NewTicker(d)}
}

func (s tickerSource) C() <-chan time.Time { return s.t.C }
func (s tickerSource) Stop()               { s.t.Stop() }

type RunnerOption func(*Runner)

func WithRenderer(r Renderer) RunnerOption {
	return func(rn *Runner) { rn.renderers = append(rn.renderers, r) }
}

func WithBus(b bus.EventBus) RunnerOption {
	return func(rn *Runner) { rn.bus = b }
}

func WithLogger(l log.Log) RunnerOption {
	return func(rn *Runner) { rn.logger = l }
}

// Runner drives a Stepper from a TickSource. It is the only goroutine touching
// the world while Run is active.
type Runner struct {
	world     Stepper
	source    TickSource
	renderers []Renderer
	bus       bus.EventBus
	logger    log.Log

	ticks uint64
}

func NewRunner(world Stepper, source TickSource, opts ...RunnerOption) *Runner {
	r := &Runner{world: world, source: source, logger: log.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddRenderer registers another renderer. Call before Run.
func (r *Runner) AddRenderer(rd Renderer) {
	r.renderers = append(r.renderers, rd)
}

// Run steps once per tick until ctx is done or a step fails. A cancelled context
// is a normal stop and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	defer r.source.Stop()
	r.logger.Info("simulation running")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation stopped", log.Uint64("ticks", r.ticks))
			return nil
		case <-r.source.C():
			if err := r.Advance(); err != nil {
				return err
			}
		}
	}
}

// Advance runs one tick synchronously and hands the snapshot to every renderer.
// Renderer and bus errors are logged, never fatal.
func (r *Runner) Advance() error {
	if err := r.world.Step(); err != nil {
		r.logger.Error("step failed", log.Uint64("ticks", r.ticks), log.Error(err))
		return err
	}
	r.ticks++

	snapshot := r.world.Snapshot()
	for _, rd := range r.renderers {
		if err := rd.Render(snapshot); err != nil {
			r.logger.Warn("render failed", log.Uint64("tick", snapshot.Tick), log.Error(err))
		}
	}
	if r.bus != nil {
		if err := r.bus.Publish(bus.NewEvent(EventTick, eventSource, snapshot)); err != nil {
			r.logger.Warn("tick handlers failed", log.Error(err))
		}
	}
	return nil
}

// Ticks returns the number of ticks advanced by this runner.
func (r *Runner) Ticks() uint64 { return r.ticks }
