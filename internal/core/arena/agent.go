package arena

import "github.com/zeusync/rpsarena/internal/core/systems/physics"

// Agent is one sign moving through the arena. Its identity is its index in the
// world's population slice.
type Agent struct {
	Kind     Kind
	Position physics.Vec2
	Velocity physics.Vec2
	// Resolving is set when the agent overlapped another agent during the
	// current tick and is recomputed every tick.
	Resolving bool
}

// Box returns the agent's bounding box for the given box size.
func (a *Agent) Box(size physics.Size) physics.Rect {
	return physics.RectAt(a.Position, size)
}

func (a *Agent) invertVelocity() {
	a.Velocity = a.Velocity.Neg()
}

// Counts holds one number per kind.
type Counts struct {
	Rock     int `json:"rock" yaml:"rock"`
	Paper    int `json:"paper" yaml:"paper"`
	Scissors int `json:"scissors" yaml:"scissors"`
}

// Of returns the count for k.
func (c Counts) Of(k Kind) int {
	switch k {
	case Rock:
		return c.Rock
	case Paper:
		return c.Paper
	case Scissors:
		return c.Scissors
	}
	return 0
}

func (c *Counts) add(k Kind) {
	switch k {
	case Rock:
		c.Rock++
	case Paper:
		c.Paper++
	case Scissors:
		c.Scissors++
	}
}

// Total is the sum over all kinds.
func (c Counts) Total() int { return c.Rock + c.Paper + c.Scissors }

// Tally counts agents by kind.
func Tally(agents []Agent) Counts {
	var c Counts
	for i := range agents {
		c.add(agents[i].Kind)
	}
	return c
}
