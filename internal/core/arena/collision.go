package arena

import "github.com/zeusync/rpsarena/internal/core/systems/physics"

// Collisions appends to dst the indices of every agent other than i whose box
// strictly overlaps agent i's box, in ascending order.
//
// This is a linear scan per agent and quadratic per tick, which is fine for the
// small populations the arena is meant for.
func Collisions(agents []Agent, i int, box physics.Size, dst []int) []int {
	self := agents[i].Box(box)
	for j := range agents {
		if j == i {
			continue
		}
		if self.Overlaps(agents[j].Box(box)) {
			dst = append(dst, j)
		}
	}
	return dst
}

// overlapsAny reports whether r overlaps the box of any agent except skip.
func overlapsAny(r physics.Rect, agents []Agent, box physics.Size, skip int) bool {
	for j := range agents {
		if j == skip {
			continue
		}
		if r.Overlaps(agents[j].Box(box)) {
			return true
		}
	}
	return false
}
