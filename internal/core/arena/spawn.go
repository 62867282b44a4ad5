package arena

import (
	"fmt"
	"math/rand/v2"

	"github.com/zeusync/rpsarena/internal/core/systems/physics"
)

// DefaultMaxSpawnAttempts bounds the number of samples tried for a single agent.
const DefaultMaxSpawnAttempts = 10_000

// spawnBuffer keeps the first regions away from the canvas edge.
const spawnBuffer = 25

// Regions assigns one spawn region per kind.
type Regions struct {
	Rock     physics.Rect `json:"rock" yaml:"rock"`
	Paper    physics.Rect `json:"paper" yaml:"paper"`
	Scissors physics.Rect `json:"scissors" yaml:"scissors"`
}

// For returns the region used for kind k.
func (r Regions) For(k Kind) physics.Rect {
	switch k {
	case Paper:
		return r.Paper
	case Scissors:
		return r.Scissors
	default:
		return r.Rock
	}
}

// DefaultRegions derives the three spawn regions from the canvas size: rocks top
// left, papers top right of centre, scissors in the middle below them.
func DefaultRegions(canvas physics.Size) Regions {
	w := canvas.Width / 4
	h := canvas.Height / 4
	return Regions{
		Rock: physics.Rect{
			Min: physics.Vec2{X: spawnBuffer, Y: spawnBuffer},
			Max: physics.Vec2{X: w, Y: h},
		},
		Paper: physics.Rect{
			Min: physics.Vec2{X: w * 2, Y: spawnBuffer},
			Max: physics.Vec2{X: w * 3, Y: h},
		},
		Scissors: physics.Rect{
			Min: physics.Vec2{X: w * 1.5, Y: h},
			Max: physics.Vec2{X: w * 2.5, Y: h * 2},
		},
	}
}

// Planner places agents into spawn regions without overlapping already placed ones.
type Planner struct {
	rng         *rand.Rand
	box         physics.Size
	maxAttempts int

	attempts int
}

func NewPlanner(rng *rand.Rand, box physics.Size, maxAttempts int) *Planner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxSpawnAttempts
	}
	return &Planner{rng: rng, box: box, maxAttempts: maxAttempts}
}

// Attempts returns the total number of samples drawn so far.
func (p *Planner) Attempts() int { return p.attempts }

// Place samples a uniformly random top-left corner inside region whose box does not
// overlap any placed agent. It gives up with ErrSpawnExhausted after maxAttempts samples.
func (p *Planner) Place(region physics.Rect, placed []Agent) (physics.Vec2, error) {
	if region.Empty() {
		return physics.Vec2{}, fmt.Errorf("%w: %+v", ErrInvalidRegion, region)
	}
	for range p.maxAttempts {
		p.attempts++
		candidate := physics.Vec2{
			X: p.rng.Float64()*region.Width() + region.Min.X,
			Y: p.rng.Float64()*region.Height() + region.Min.Y,
		}
		if !overlapsAny(physics.RectAt(candidate, p.box), placed, p.box, -1) {
			return candidate, nil
		}
	}
	return physics.Vec2{}, fmt.Errorf("%w: %d attempts in region %+v", ErrSpawnExhausted, p.maxAttempts, region)
}

// Populate places counts.Of(k) agents of every kind, in Kinds order, each kind into
// its own region. Every agent starts moving at (+speed, +speed).
func (p *Planner) Populate(counts Counts, regions Regions, speed float64) ([]Agent, error) {
	agents := make([]Agent, 0, counts.Total())
	for _, k := range Kinds {
		region := regions.For(k)
		for i := range counts.Of(k) {
			pos, err := p.Place(region, agents)
			if err != nil {
				return nil, fmt.Errorf("place %s #%d: %w", k, i, err)
			}
			agents = append(agents, Agent{
				Kind:     k,
				Position: pos,
				Velocity: physics.Vec2{X: speed, Y: speed},
			})
		}
	}
	return agents, nil
}
