package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rpsarena/internal/core/systems/physics"
)

var bigCanvas = physics.Size{Width: 1200, Height: 1200}

func testSettings() Settings {
	return Settings{
		Counts:           Counts{Rock: 10, Paper: 10, Scissors: 10},
		Canvas:           bigCanvas,
		Box:              testBox,
		Speed:            5,
		Regions:          DefaultRegions(bigCanvas),
		Seed:             42,
		MaxSpawnAttempts: DefaultMaxSpawnAttempts,
		StrictInvariants: true,
	}
}

func agent(k Kind, x, y, vx, vy float64) Agent {
	return Agent{Kind: k, Position: physics.Vec2{X: x, Y: y}, Velocity: physics.Vec2{X: vx, Y: vy}}
}

func TestStepKeepsPopulationAndSpeed(t *testing.T) {
	w, err := Setup(testSettings())
	require.NoError(t, err)
	require.Equal(t, 30, w.Len())

	for range 2000 {
		require.NoError(t, w.Step())
	}

	assert.EqualValues(t, 2000, w.Tick())
	assert.Equal(t, 30, w.Len())
	assert.Equal(t, 30, w.Snapshot().Counts.Total())
	for i := range w.Len() {
		v := w.Agent(i).Velocity
		assert.Equal(t, physics.Vec2{X: 5, Y: 5}, absVec(v), "agent %d", i)
	}
	assert.NotZero(t, w.Combats())
}

func TestStepSameKindBounces(t *testing.T) {
	w := NewWorld(bigCanvas, testBox, []Agent{
		agent(Rock, 300, 310, 0, 1),
		agent(Rock, 300, 300, 0, -1),
	})

	require.NoError(t, w.Step())

	assert.Equal(t, Rock, w.Agent(0).Kind)
	assert.Equal(t, Rock, w.Agent(1).Kind)
	assert.Equal(t, physics.Vec2{X: 0, Y: -1}, w.Agent(0).Velocity)
	assert.Equal(t, physics.Vec2{X: 0, Y: 1}, w.Agent(1).Velocity)
}

func TestStepRockBeatsScissors(t *testing.T) {
	w := NewWorld(bigCanvas, testBox, []Agent{
		agent(Rock, 100, 100, 1, 1),
		agent(Scissors, 110, 110, -1, -1),
	})

	require.NoError(t, w.Step())

	assert.Equal(t, Rock, w.Agent(0).Kind)
	assert.Equal(t, Rock, w.Agent(1).Kind)
	assert.Equal(t, physics.Vec2{X: -1, Y: -1}, w.Agent(0).Velocity)
	assert.Equal(t, physics.Vec2{X: 1, Y: 1}, w.Agent(1).Velocity)
	assert.EqualValues(t, 1, w.Combats())
}

func TestStepScissorsBeatPaper(t *testing.T) {
	w := NewWorld(bigCanvas, testBox, []Agent{
		agent(Paper, 100, 100, 1, 0),
		agent(Scissors, 120, 100, -1, 0),
	})

	require.NoError(t, w.Step())

	assert.Equal(t, Scissors, w.Agent(0).Kind)
	assert.Equal(t, Scissors, w.Agent(1).Kind)
}

func TestStepReflectsAtRightEdge(t *testing.T) {
	w := NewWorld(bigCanvas, testBox, []Agent{agent(Paper, 1170, 500, 5, 5)})

	require.NoError(t, w.Step())

	a := w.Agent(0)
	assert.Equal(t, physics.Vec2{X: -5, Y: 5}, a.Velocity)
	assert.Equal(t, physics.Vec2{X: 1165, Y: 505}, a.Position)
}

func TestStepDebouncesOverlappingPair(t *testing.T) {
	var combats []Combat
	w := NewWorld(bigCanvas, testBox, []Agent{
		agent(Rock, 100, 100, 1, 0),
		agent(Paper, 120, 100, -1, 0),
	}, WithCombatHandler(func(c Combat) { combats = append(combats, c) }))

	require.NoError(t, w.Step())
	require.Len(t, combats, 1)
	assert.Equal(t, Paper, combats[0].Winner)
	v0, v1 := w.Agent(0).Velocity, w.Agent(1).Velocity

	// still overlapping: no new combat and no second bounce
	require.NoError(t, w.Step())
	assert.Len(t, combats, 1)
	assert.Equal(t, v0, w.Agent(0).Velocity)
	assert.Equal(t, v1, w.Agent(1).Velocity)
	assert.True(t, w.Agent(0).Resolving)
	assert.True(t, w.Agent(1).Resolving)
}

func TestStepSeparatesStuckPairWithoutKindChange(t *testing.T) {
	agents := []Agent{
		agent(Rock, 100, 100, 5, 5),
		agent(Paper, 110, 110, 5, 5),
	}
	agents[0].Resolving = true
	agents[1].Resolving = true
	w := NewWorld(bigCanvas, testBox, agents)

	require.NoError(t, w.Step())

	assert.Equal(t, Rock, w.Agent(0).Kind)
	assert.Equal(t, Paper, w.Agent(1).Kind)
	assert.Equal(t, physics.Vec2{X: -5, Y: -5}, w.Agent(0).Velocity)
	assert.Equal(t, physics.Vec2{X: 5, Y: 5}, w.Agent(1).Velocity)
	assert.EqualValues(t, 1, w.Separated())
	assert.Zero(t, w.Combats())
}

func TestStepIsOrderDependent(t *testing.T) {
	// 0 overlaps 1, 1 overlaps 2, 0 and 2 are apart. Once 0 and 1 resolve, 1 is
	// marked, so its overlap with 2 is skipped for the rest of the tick.
	w := NewWorld(bigCanvas, testBox, []Agent{
		agent(Rock, 100, 100, 0, 1),
		agent(Scissors, 130, 100, 0, -1),
		agent(Paper, 160, 100, 1, 0),
	})

	require.NoError(t, w.Step())

	assert.Equal(t, Rock, w.Agent(0).Kind)
	assert.Equal(t, Rock, w.Agent(1).Kind)
	assert.Equal(t, Paper, w.Agent(2).Kind)
	assert.Equal(t, physics.Vec2{X: 1, Y: 0}, w.Agent(2).Velocity)
	assert.True(t, w.Agent(2).Resolving)
	assert.Equal(t, Counts{Rock: 2, Paper: 1}, w.Snapshot().Counts)
}

func TestStrictModeCatchesSpeedChange(t *testing.T) {
	w := NewWorld(bigCanvas, testBox, []Agent{agent(Rock, 100, 100, 1, 1)}, WithStrictInvariants(true))
	require.NoError(t, w.Step())

	w.agents[0].Velocity = physics.Vec2{X: 2, Y: 1}
	err := w.Step()
	assert.ErrorIs(t, err, ErrInvariantViolated)
}

func TestSetupFailsOnCrowdedRegion(t *testing.T) {
	s := testSettings()
	s.Counts.Rock = 100
	s.Regions.Rock = physics.Rect{Min: physics.Vec2{X: 0, Y: 0}, Max: physics.Vec2{X: 60, Y: 60}}
	s.MaxSpawnAttempts = 200

	_, err := Setup(s)
	assert.ErrorIs(t, err, ErrSpawnExhausted)
}

func TestSnapshotIsOrderedCopy(t *testing.T) {
	w := NewWorld(bigCanvas, testBox, []Agent{
		agent(Scissors, 10, 20, 1, 1),
		agent(Rock, 500, 600, 1, 1),
	})

	s := w.Snapshot()
	assert.Equal(t, []AgentView{{Kind: Scissors, X: 10, Y: 20}, {Kind: Rock, X: 500, Y: 600}}, s.Agents)
	assert.Equal(t, Counts{Rock: 1, Scissors: 1}, s.Counts)

	require.NoError(t, w.Step())
	assert.Equal(t, 10.0, s.Agents[0].X, "snapshot must not alias the world")
	assert.NotEqual(t, s.Digest(), w.Snapshot().Digest())
}

func TestRunsAreReproducible(t *testing.T) {
	a, err := Setup(testSettings())
	require.NoError(t, err)
	b, err := Setup(testSettings())
	require.NoError(t, err)

	for range 300 {
		require.NoError(t, a.Step())
		require.NoError(t, b.Step())
	}
	assert.Equal(t, a.Snapshot().Digest(), b.Snapshot().Digest())
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestCountsLeader(t *testing.T) {
	k, ok := Counts{Rock: 1, Paper: 4, Scissors: 4}.Leader()
	assert.True(t, ok)
	assert.Equal(t, Paper, k)

	_, ok = Counts{}.Leader()
	assert.False(t, ok)
}
