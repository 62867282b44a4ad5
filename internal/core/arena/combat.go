package arena

// Combat describes one resolved encounter.
type Combat struct {
	Tick   uint64 `json:"tick"`
	A      int    `json:"a"`
	B      int    `json:"b"`
	KindA  Kind   `json:"kindA"`
	KindB  Kind   `json:"kindB"`
	Winner Kind   `json:"winner"`
}

// Resolver applies the rule table to colliding agents and debounces pairs that
// stay overlapped across ticks.
type Resolver struct {
	onCombat func(Combat)

	combats   uint64
	separated uint64
}

func NewResolver(onCombat func(Combat)) *Resolver {
	return &Resolver{onCombat: onCombat}
}

// Combats returns the number of encounters that changed kinds or bounced.
func (r *Resolver) Combats() uint64 { return r.combats }

// Separated returns how many times an overlapping pair with identical velocities
// was forced apart.
func (r *Resolver) Separated() uint64 { return r.separated }

// Resolve handles every partner of agent i. Partners are marked resolving as soon
// as their pair is handled; agent i is marked once all partners are done.
func (r *Resolver) Resolve(tick uint64, agents []Agent, i int, partners []int) {
	a := &agents[i]
	for _, j := range partners {
		b := &agents[j]
		switch {
		case a.Resolving && b.Resolving:
			// Still overlapped from an earlier encounter. Equal velocities would keep
			// them glued together forever.
			if a.Velocity == b.Velocity {
				a.invertVelocity()
				r.separated++
			}
		case a.Resolving || b.Resolving:
			// handled already from the other side
		default:
			c := Combat{Tick: tick, A: i, B: j, KindA: a.Kind, KindB: b.Kind}
			c.Winner = Winner(a.Kind, b.Kind)
			a.Kind = c.Winner
			b.Kind = c.Winner
			a.invertVelocity()
			b.invertVelocity()
			r.combats++
			if r.onCombat != nil {
				r.onCombat(c)
			}
		}
		b.Resolving = true
	}
	a.Resolving = len(partners) > 0
}
