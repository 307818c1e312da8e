package systems

import (
	"testing"

	"github.com/automoto/seekthescounge/assets"
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/logger"
	"github.com/automoto/seekthescounge/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type frameInput struct {
	deltaMs float64
	in      components.ControlData
}

type snapshot struct {
	x, y, vx, vy float64
	key          string
	attacking    bool
	dead         bool
}

// script walks right, jumps, attacks and drifts in the air.
func script() []frameInput {
	var frames []frameInput
	add := func(n int, delta float64, in components.ControlData) {
		for i := 0; i < n; i++ {
			frames = append(frames, frameInput{deltaMs: delta, in: in})
		}
	}
	add(40, 16, control(false, false, false, false))
	add(30, 16, control(false, true, false, false))
	add(5, 17, control(false, true, true, false))
	add(20, 16, control(false, false, false, false))
	add(1, 16, control(false, false, false, true))
	add(40, 15, control(true, false, false, false))
	add(10, 16, control(true, true, true, true))
	return frames
}

func replay(t *testing.T, frames []frameInput) []snapshot {
	t.Helper()
	level, err := assets.LoadLevel(cfg.Level.Path)
	require.NoError(t, err)

	logger.Silence()
	w := donburi.NewWorld()
	player, err := factory.SpawnLevel(w, level, "rovert")
	require.NoError(t, err)

	out := make([]snapshot, 0, len(frames))
	for _, f := range frames {
		components.Control.SetValue(player, f.in)
		Tick(w, f.deltaMs)

		obj := components.Object.Get(player).Object
		physics := components.Physics.Get(player)
		out = append(out, snapshot{
			x:         obj.X,
			y:         obj.Y,
			vx:        physics.Velocity.X,
			vy:        physics.Velocity.Y,
			key:       components.Animation.Get(player).Key,
			attacking: IsAttackInProgress(player),
			dead:      IsDead(player),
		})
	}
	return out
}

func TestReplayIsDeterministic(t *testing.T) {
	frames := script()

	first := replay(t, frames)
	second := replay(t, frames)

	assert.Equal(t, first, second)
}

func TestSpawnedPlayerSettlesOnGround(t *testing.T) {
	level, err := assets.LoadLevel(cfg.Level.Path)
	require.NoError(t, err)
	logger.Silence()
	world := donburi.NewWorld()
	player, err := factory.SpawnLevel(world, level, "rovert")
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		Tick(world, 16)
	}

	physics := components.Physics.Get(player)
	assert.True(t, physics.OnFloor())
	assert.Equal(t, "rovert-idle-right", components.Animation.Get(player).Key)
	assert.False(t, IsDead(player))
}
