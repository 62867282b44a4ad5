package arena

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/zeusync/rpsarena/internal/core/observability/log"
	"github.com/zeusync/rpsarena/internal/core/systems/physics"
)

// Settings are the static parameters the engine consumes.
type Settings struct {
	Counts           Counts
	Canvas           physics.Size
	Box              physics.Size
	Speed            float64
	Regions          Regions
	Seed             uint64
	MaxSpawnAttempts int
	StrictInvariants bool
}

// Option customises a World.
type Option func(*World)

// WithLogger sets the logger used for setup and invariant reports.
func WithLogger(l log.Log) Option {
	return func(w *World) { w.logger = l }
}

// WithCombatHandler registers a callback invoked for every resolved combat.
func WithCombatHandler(h func(Combat)) Option {
	return func(w *World) { w.onCombat = h }
}

// WithStrictInvariants makes Step verify population size and speeds after each tick.
func WithStrictInvariants(strict bool) Option {
	return func(w *World) { w.strict = strict }
}

// World owns the agent population and advances it one tick at a time. It is not
// safe for concurrent use; a single driver calls Step.
type World struct {
	canvas physics.Size
	box    physics.Size
	agents []Agent
	tick   uint64

	resolver *Resolver
	onCombat func(Combat)
	partners []int

	strict     bool
	population int
	speeds     []physics.Vec2

	logger log.Log
}

// Setup places the initial population described by s and returns a world ready to step.
func Setup(s Settings, opts ...Option) (*World, error) {
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	planner := NewPlanner(rng, s.Box, s.MaxSpawnAttempts)
	agents, err := planner.Populate(s.Counts, s.Regions, s.Speed)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithStrictInvariants(s.StrictInvariants)}, opts...)
	w := NewWorld(s.Canvas, s.Box, agents, opts...)
	w.logger.Info("population placed",
		log.Int("agents", len(agents)),
		log.Int("spawn_attempts", planner.Attempts()),
		log.Uint64("seed", s.Seed),
	)
	return w, nil
}

// NewWorld wraps an existing population. The slice is owned by the world afterwards.
func NewWorld(canvas, box physics.Size, agents []Agent, opts ...Option) *World {
	w := &World{
		canvas:     canvas,
		box:        box,
		agents:     agents,
		population: len(agents),
		logger:     log.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.resolver = NewResolver(w.onCombat)
	w.speeds = make([]physics.Vec2, len(agents))
	for i := range agents {
		w.speeds[i] = absVec(agents[i].Velocity)
	}
	return w
}

// Step advances every agent by one tick in index order: reflect at the canvas
// edges, resolve collisions, then integrate. Agents later in the order see the
// already updated state of earlier ones.
func (w *World) Step() error {
	w.tick++
	for i := range w.agents {
		a := &w.agents[i]
		ReflectBounds(a, w.canvas, w.box)
		w.partners = Collisions(w.agents, i, w.box, w.partners[:0])
		w.resolver.Resolve(w.tick, w.agents, i, w.partners)
		Integrate(a)
	}
	if w.strict {
		if err := w.checkInvariants(); err != nil {
			w.logger.Error("invariant check failed", log.Uint64("tick", w.tick), log.Error(err))
			return err
		}
	}
	return nil
}

func (w *World) checkInvariants() error {
	if len(w.agents) != w.population {
		return fmt.Errorf("%w: population %d, want %d", ErrInvariantViolated, len(w.agents), w.population)
	}
	for i := range w.agents {
		if got := absVec(w.agents[i].Velocity); got != w.speeds[i] {
			return fmt.Errorf("%w: agent %d speed %+v, want %+v", ErrInvariantViolated, i, got, w.speeds[i])
		}
		if !w.agents[i].Kind.Valid() {
			return fmt.Errorf("%w: agent %d kind %d", ErrInvariantViolated, i, w.agents[i].Kind)
		}
	}
	return nil
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 { return w.tick }

// Len returns the population size.
func (w *World) Len() int { return len(w.agents) }

// Agent returns a copy of agent i.
func (w *World) Agent(i int) Agent { return w.agents[i] }

// Combats returns how many encounters have been resolved so far.
func (w *World) Combats() uint64 { return w.resolver.Combats() }

// Separated returns how many stuck pairs were forced apart so far.
func (w *World) Separated() uint64 { return w.resolver.Separated() }

// Canvas returns the arena size.
func (w *World) Canvas() physics.Size { return w.canvas }

func absVec(v physics.Vec2) physics.Vec2 {
	return physics.Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}
