package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/rpsarena/internal/core/systems/physics"
)

func at(x, y float64) Agent {
	return Agent{Position: physics.Vec2{X: x, Y: y}}
}

func TestCollisionsExcludeSelfAndTouching(t *testing.T) {
	agents := []Agent{
		at(100, 100),
		at(120, 120), // overlaps 0
		at(140, 100), // touches 0 on the right edge
		at(100, 100), // same spot as 0
		at(500, 500),
	}

	assert.Equal(t, []int{1, 3}, Collisions(agents, 0, testBox, nil))
	assert.Equal(t, []int{0, 2, 3}, Collisions(agents, 1, testBox, nil))
	assert.Empty(t, Collisions(agents, 4, testBox, nil))
}

func TestCollisionsReusesBuffer(t *testing.T) {
	agents := []Agent{at(0, 0), at(10, 10)}
	buf := make([]int, 0, 4)

	got := Collisions(agents, 0, testBox, buf)
	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 4, cap(got))
}

func TestOverlapsAnySkipsIndex(t *testing.T) {
	agents := []Agent{at(0, 0), at(200, 200)}
	r := physics.RectAt(physics.Vec2{X: 5, Y: 5}, testBox)

	assert.True(t, overlapsAny(r, agents, testBox, -1))
	assert.False(t, overlapsAny(r, agents, testBox, 0))
}
