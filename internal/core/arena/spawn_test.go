package arena

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rpsarena/internal/core/systems/physics"
)

var testBox = physics.Size{Width: 40, Height: 40}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPlaceStaysInRegionWithoutOverlap(t *testing.T) {
	p := NewPlanner(testRNG(), testBox, 0)
	region := physics.Rect{Min: physics.Vec2{X: 25, Y: 25}, Max: physics.Vec2{X: 300, Y: 300}}

	var placed []Agent
	for range 15 {
		pos, err := p.Place(region, placed)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pos.X, region.Min.X)
		assert.Less(t, pos.X, region.Max.X)
		assert.GreaterOrEqual(t, pos.Y, region.Min.Y)
		assert.Less(t, pos.Y, region.Max.Y)
		placed = append(placed, Agent{Position: pos})
	}

	for i := range placed {
		assert.Empty(t, Collisions(placed, i, testBox, nil), "agent %d overlaps", i)
	}
	assert.GreaterOrEqual(t, p.Attempts(), 15)
}

func TestPopulateOrderAndVelocity(t *testing.T) {
	p := NewPlanner(testRNG(), testBox, 0)
	regions := DefaultRegions(physics.Size{Width: 1200, Height: 1200})

	agents, err := p.Populate(Counts{Rock: 3, Paper: 2, Scissors: 4}, regions, 5)
	require.NoError(t, err)
	require.Len(t, agents, 9)

	want := []Kind{Rock, Rock, Rock, Paper, Paper, Scissors, Scissors, Scissors, Scissors}
	for i, a := range agents {
		assert.Equal(t, want[i], a.Kind)
		assert.Equal(t, physics.Vec2{X: 5, Y: 5}, a.Velocity)
		assert.False(t, a.Resolving)
		r := regions.For(a.Kind)
		assert.True(t, a.Position.X >= r.Min.X && a.Position.X < r.Max.X, "agent %d x", i)
		assert.True(t, a.Position.Y >= r.Min.Y && a.Position.Y < r.Max.Y, "agent %d y", i)
	}
}

func TestPlaceExhaustsInsteadOfHanging(t *testing.T) {
	p := NewPlanner(testRNG(), testBox, 500)
	tiny := Regions{
		Rock: physics.Rect{Max: physics.Vec2{X: 50, Y: 50}},
	}

	_, err := p.Populate(Counts{Rock: 10}, tiny, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSpawnExhausted), "got %v", err)
}

func TestPlaceRejectsEmptyRegion(t *testing.T) {
	p := NewPlanner(testRNG(), testBox, 0)
	_, err := p.Place(physics.Rect{Min: physics.Vec2{X: 10, Y: 10}, Max: physics.Vec2{X: 10, Y: 20}}, nil)
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestDefaultRegions(t *testing.T) {
	r := DefaultRegions(physics.Size{Width: 1200, Height: 1200})

	assert.Equal(t, physics.Rect{Min: physics.Vec2{X: 25, Y: 25}, Max: physics.Vec2{X: 300, Y: 300}}, r.Rock)
	assert.Equal(t, physics.Rect{Min: physics.Vec2{X: 600, Y: 25}, Max: physics.Vec2{X: 900, Y: 300}}, r.Paper)
	assert.Equal(t, physics.Rect{Min: physics.Vec2{X: 450, Y: 300}, Max: physics.Vec2{X: 750, Y: 600}}, r.Scissors)
	assert.Equal(t, r.Scissors, r.For(Scissors))
}

func TestPlacementIsReproducible(t *testing.T) {
	regions := DefaultRegions(physics.Size{Width: 1200, Height: 1200})
	counts := Counts{Rock: 5, Paper: 5, Scissors: 5}

	a, err := NewPlanner(testRNG(), testBox, 0).Populate(counts, regions, 5)
	require.NoError(t, err)
	b, err := NewPlanner(testRNG(), testBox, 0).Populate(counts, regions, 5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
