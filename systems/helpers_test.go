package systems

import (
	"testing"

	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/logger"
	"github.com/automoto/seekthescounge/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const frameMs = 10.0

// newTestWorld returns a world with a clock, camera, HUD and an empty
// collision space. No level is loaded.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	logger.Silence()
	w := donburi.NewWorld()
	factory.CreateClock(w)
	factory.CreateCamera(w)
	factory.CreateHUD(w)
	factory.CreateSpace(w, 1024, 320, 16, 16)
	return w
}

// newPlayer spawns a character standing at (x, y) with a private copy of its
// capability table, so tests can tune it freely.
func newPlayer(t *testing.T, w donburi.World, x, y float64, id string) (*donburi.Entry, *cfg.CharacterConfig) {
	t.Helper()
	e, err := factory.CreatePlayer(w, x, y, id)
	require.NoError(t, err)

	player := components.Player.Get(e)
	char := *player.Character
	if player.Character.MovingAttack != nil {
		moving := *player.Character.MovingAttack
		char.MovingAttack = &moving
	}
	player.Character = &char
	components.Animation.Get(e).Set = &char.Animations
	return e, &char
}

func newEnemy(t *testing.T, w donburi.World, x, y float64, typeName string) (*donburi.Entry, *cfg.EnemyTypeConfig) {
	t.Helper()
	e, err := factory.CreateEnemy(w, x, y, typeName)
	require.NoError(t, err)

	enemy := components.Enemy.Get(e)
	typ := *enemy.Type
	enemy.Type = &typ
	return e, &typ
}

// step advances the clock and fires due deferred actions.
func step(w donburi.World, ms float64) {
	AdvanceClock(w, ms)
	UpdateScheduler(w)
}

func standOnFloor(e *donburi.Entry) {
	components.Physics.Get(e).Blocked.Down = true
}

func control(left, right, jump, attack bool) components.ControlData {
	return components.ControlData{MoveLeft: left, MoveRight: right, Jump: jump, Attack: attack}
}

// collect records every event of type T delivered while the test runs.
func collect[T any](w donburi.World, et *events.EventType[T]) *[]T {
	var got []T
	et.Subscribe(w, func(_ donburi.World, event T) {
		got = append(got, event)
	})
	return &got
}
