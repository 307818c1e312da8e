package systems

import (
	"testing"

	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestPatrolBounces(t *testing.T) {
	tests := []struct {
		name    string
		contact func(*components.PhysicsData)
		want    cfg.Direction
	}{
		{"open floor", func(*components.PhysicsData) {}, cfg.DirLeft},
		{"blocked", func(p *components.PhysicsData) { p.Blocked.Left = true }, cfg.DirRight},
		{"touching", func(p *components.PhysicsData) { p.Touching.Left = true }, cfg.DirRight},
		{"blocked behind", func(p *components.PhysicsData) { p.Blocked.Right = true }, cfg.DirLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			e, typ := newEnemy(t, w, 300, 160, "goomba")
			physics := components.Physics.Get(e)
			tt.contact(physics)

			step(w, frameMs)
			UpdateEnemies(w)

			assert.Equal(t, tt.want, components.Enemy.Get(e).Direction)
			assert.Equal(t, tt.want.Sign()*typ.Speed, physics.Velocity.X)
		})
	}
}

func TestPassiveEnemyStillWalks(t *testing.T) {
	w := newTestWorld(t)
	e, typ := newEnemy(t, w, 300, 160, "snail")

	step(w, frameMs)
	UpdateEnemies(w)

	assert.Equal(t, -typ.Speed, components.Physics.Get(e).Velocity.X)
}

func TestEnemyYieldsToKnockback(t *testing.T) {
	w := newTestWorld(t)
	e, _ := newEnemy(t, w, 300, 160, "goomba")
	physics := components.Physics.Get(e)

	step(w, frameMs)
	ApplyKnockback(w, e, cfg.DirRight, cfg.KnockbackConfig{Horizontal: 24, Duration: 150}, Now(w))
	UpdateEnemies(w)
	assert.InDelta(t, 160.0, physics.Velocity.X, 1e-9)

	step(w, 150)
	UpdateEnemies(w)
	assert.Equal(t, -40.0, physics.Velocity.X)
}

// chaseSetup places a chaser at x=300 facing left and a player dx away.
func chaseSetup(t *testing.T, snapiness, delay, dx float64) (donburi.World, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := newTestWorld(t)
	e, typ := newEnemy(t, w, 300, 160, "chaser")
	typ.Snapiness = snapiness
	typ.TurnaroundDelay = delay
	player, _ := newPlayer(t, w, 300+dx, 160, "rovert")
	SetEnemyTarget(e, player)
	return w, e, player
}

func TestChaseFlipThreshold(t *testing.T) {
	tests := []struct {
		name      string
		snapiness float64
		dx        float64
		want      cfg.Direction
	}{
		{"inside half threshold", 0.5, 40, cfg.DirLeft},
		{"on half threshold", 0.5, 48, cfg.DirLeft},
		{"past half threshold", 0.5, 60, cfg.DirRight},
		{"snappy", 1, 1, cfg.DirRight},
		{"lazy inside", 0.25, 70, cfg.DirLeft},
		{"lazy past", 0.25, 80, cfg.DirRight},
		{"no snapiness never tracks", 0, 500, cfg.DirLeft},
		{"target already ahead", 0.5, -200, cfg.DirLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, e, _ := chaseSetup(t, tt.snapiness, 0, tt.dx)

			step(w, frameMs)
			UpdateEnemies(w)

			assert.Equal(t, tt.want, components.Enemy.Get(e).Direction)
		})
	}
}

func TestChaseTurnaroundDelay(t *testing.T) {
	w, e, _ := chaseSetup(t, 0.5, 200, 60)
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)

	step(w, frameMs)
	started := Now(w)
	UpdateEnemies(w)
	require.True(t, enemy.Turning())

	for Now(w) < started+200-frameMs {
		require.Equal(t, cfg.DirLeft, enemy.Direction, "at %vms", Now(w)-started)
		require.Zero(t, physics.Velocity.X)
		step(w, frameMs)
		UpdateEnemies(w)
	}

	step(w, frameMs)
	UpdateEnemies(w)
	assert.Equal(t, cfg.DirRight, enemy.Direction)
	assert.False(t, enemy.Turning())
	assert.Equal(t, enemy.Type.Speed, physics.Velocity.X)
}

func TestChaseTurnCancelledWhenTargetCrossesBack(t *testing.T) {
	w, e, player := chaseSetup(t, 0.5, 200, 60)
	enemy := components.Enemy.Get(e)

	step(w, frameMs)
	UpdateEnemies(w)
	require.True(t, enemy.Turning())

	components.Object.Get(player).X = 200
	step(w, 100)
	UpdateEnemies(w)
	assert.False(t, enemy.Turning())

	step(w, 200)
	UpdateEnemies(w)
	assert.Equal(t, cfg.DirLeft, enemy.Direction)
	assert.Equal(t, -enemy.Type.Speed, components.Physics.Get(e).Velocity.X)
}

func TestChaseIgnoresDeadTarget(t *testing.T) {
	w, e, player := chaseSetup(t, 1, 0, 200)
	components.Death.Get(player).Dead = true

	step(w, frameMs)
	UpdateEnemies(w)

	assert.Equal(t, cfg.DirLeft, components.Enemy.Get(e).Direction)
}

func TestTryDamageCooldown(t *testing.T) {
	w := newTestWorld(t)
	e, typ := newEnemy(t, w, 300, 160, "goomba")
	dummy := factory.CreateDummy(w, 500, 160)

	step(w, frameMs)
	assert.True(t, TryDamage(w, e, dummy))
	assert.Equal(t, 1, components.Dummy.Get(dummy).HitsTaken)

	step(w, typ.DamageCooldown/2)
	assert.False(t, TryDamage(w, e, dummy))

	step(w, typ.DamageCooldown/2)
	assert.True(t, TryDamage(w, e, dummy))
	assert.Equal(t, 2, components.Dummy.Get(dummy).HitsTaken)
}

func TestPassiveTryDamageIsNoop(t *testing.T) {
	w := newTestWorld(t)
	e, _ := newEnemy(t, w, 300, 160, "snail")
	player, _ := newPlayer(t, w, 300, 160, "rovert")

	assert.False(t, TryDamage(w, e, player))
	assert.False(t, IsDead(player))
}

func TestDeadEnemyCannotDamage(t *testing.T) {
	w := newTestWorld(t)
	e, _ := newEnemy(t, w, 300, 160, "goomba")
	player, _ := newPlayer(t, w, 300, 160, "rovert")
	TakeDamage(w, e, 1, player)

	assert.False(t, TryDamage(w, e, player))
	assert.False(t, IsDead(player))
}

func TestEnemyContactKillsPlayer(t *testing.T) {
	w := newTestWorld(t)
	newEnemy(t, w, 300, 160, "goomba")
	player, _ := newPlayer(t, w, 305, 160, "rovert")
	died := collect(w, components.PlayerDied)
	finished := collect(w, components.DeathSequenceFinished)

	step(w, frameMs)
	UpdateEnemyContacts(w)
	ProcessEvents(w)

	require.True(t, IsDead(player))
	assert.False(t, components.Physics.Get(player).Enabled)
	require.Len(t, *died, 1)
	assert.Equal(t, player, (*died)[0].Player)

	camera := components.Camera.Get(components.Camera.MustFirst(w))
	assert.True(t, camera.Locked)

	step(w, cfg.Death.TeardownDelayMs-frameMs)
	ProcessEvents(w)
	assert.Empty(t, *finished)

	step(w, frameMs)
	ProcessEvents(w)
	assert.Len(t, *finished, 1)
}

func TestDamageOnDeadActorIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	player, _ := newPlayer(t, w, 100, 160, "rovert")
	died := collect(w, components.PlayerDied)

	TakeDamage(w, player, 1, nil)
	TakeDamage(w, player, 1, nil)
	ProcessEvents(w)

	assert.Len(t, *died, 1)
}

func TestEnemyDespawnsAfterDelay(t *testing.T) {
	w := newTestWorld(t)
	e, typ := newEnemy(t, w, 300, 160, "possum")
	obj := components.Object.Get(e).Object

	step(w, frameMs)
	TakeDamage(w, e, 1, nil)
	assert.Zero(t, components.Physics.Get(e).Velocity.X)
	assert.True(t, components.Physics.Get(e).Enabled)

	step(w, typ.DeathDespawnDelay-frameMs)
	UpdateDespawns(w)
	require.True(t, e.Valid())
	assert.InDelta(t, 1-frameMs/typ.DeathDespawnDelay, DespawnProgress(w, e), 1e-9)

	step(w, frameMs)
	UpdateDespawns(w)
	assert.False(t, e.Valid())
	assert.Nil(t, obj.Space)
}

func TestDeadEnemyStopsMoving(t *testing.T) {
	w := newTestWorld(t)
	e, _ := newEnemy(t, w, 300, 160, "possum")
	physics := components.Physics.Get(e)

	TakeDamage(w, e, 1, nil)
	for i := 0; i < 5; i++ {
		step(w, frameMs)
		UpdateEnemies(w)
		UpdateAnimations(w)
	}

	assert.Zero(t, physics.Velocity.X)
	assert.Equal(t, cfg.AnimDie, components.Animation.Get(e).State)
}

func TestSwingKnocksBackKilledEnemy(t *testing.T) {
	w := newTestWorld(t)
	player, _ := newPlayer(t, w, 100, 160, "rovert")
	e, _ := newEnemy(t, w, 122, 160, "possum")
	components.Physics.Get(player).AllowGravity = false
	physics := components.Physics.Get(e)
	physics.AllowGravity = false
	obj := components.Object.Get(e).Object

	press := true
	for i := 0; i < 40 && !IsDead(e); i++ {
		step(w, frameMs)
		standOnFloor(player)
		UpdatePlayerEntry(w, player, control(false, false, false, press), Now(w))
		press = false
		UpdateEnemies(w)
		UpdatePhysics(w)
	}
	require.True(t, IsDead(e))
	require.True(t, KnockbackActive(e))

	hitX := obj.X
	for KnockbackActive(e) {
		step(w, frameMs)
		UpdateEnemies(w)
		UpdatePhysics(w)
	}
	assert.Greater(t, obj.X, hitX+10)

	// Once the reset fires the corpse stays put.
	restX := obj.X
	step(w, frameMs)
	UpdateEnemies(w)
	UpdatePhysics(w)
	assert.Zero(t, physics.Velocity.X)
	assert.Equal(t, restX, obj.X)
}

func TestPatrolIgnoresCorpses(t *testing.T) {
	tests := []struct {
		name string
		dead bool
		want cfg.Direction
	}{
		{"live neighbour", false, cfg.DirRight},
		{"corpse", true, cfg.DirLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			e, _ := newEnemy(t, w, 300, 160, "goomba")
			left := components.Object.Get(e).Object.X
			other, typ := newEnemy(t, w, 0, 160, "possum")
			otherObj := components.Object.Get(other).Object
			otherObj.X = left - typ.Width
			otherObj.Update()
			if tt.dead {
				TakeDamage(w, other, 1, nil)
			}

			step(w, frameMs)
			UpdatePhysics(w)
			UpdateEnemies(w)

			assert.Equal(t, tt.want, components.Enemy.Get(e).Direction)
		})
	}
}
