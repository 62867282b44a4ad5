package arena

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// AgentView is the renderer-facing part of an agent.
type AgentView struct {
	Kind Kind    `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Snapshot is the ordered output of one tick. It shares nothing with the world.
type Snapshot struct {
	Tick   uint64      `json:"tick"`
	Agents []AgentView `json:"agents"`
	Counts Counts      `json:"counts"`
}

// Snapshot copies the current population in index order.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.tick,
		Agents: make([]AgentView, len(w.agents)),
		Counts: Tally(w.agents),
	}
	for i := range w.agents {
		a := &w.agents[i]
		s.Agents[i] = AgentView{Kind: a.Kind, X: a.Position.X, Y: a.Position.Y}
	}
	return s
}

// Digest hashes the tick and every agent's kind and position. Two snapshots with
// the same digest are identical for rendering purposes.
func (s Snapshot) Digest() uint64 {
	h := xxhash.New()
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[:8], s.Tick)
	_, _ = h.Write(buf[:8])
	for _, a := range s.Agents {
		buf[0] = byte(a.Kind)
		binary.LittleEndian.PutUint64(buf[1:9], math.Float64bits(a.X))
		binary.LittleEndian.PutUint64(buf[9:17], math.Float64bits(a.Y))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Leader returns the kind with the most agents, and false if the population is
// empty. Ties favour the earlier kind.
func (c Counts) Leader() (Kind, bool) {
	best, n := Rock, -1
	for _, k := range Kinds {
		if c.Of(k) > n {
			best, n = k, c.Of(k)
		}
	}
	return best, n > 0
}
