package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// IsDead reports whether the actor has entered its terminal state.
func IsDead(e *donburi.Entry) bool {
	if !e.Valid() || !e.HasComponent(components.Death) {
		return false
	}
	return components.Death.Get(e).Dead
}

// TakeDamage is the damage contract shared by all actors. Players die from
// any damage, enemies die outright, dummies count hits. Dead targets ignore
// it.
func TakeDamage(w donburi.World, target *donburi.Entry, amount int, source *donburi.Entry) {
	if !target.Valid() || IsDead(target) {
		return
	}
	now := Now(w)

	switch {
	case target.HasComponent(components.Player):
		startPlayerDeath(w, target, source, now)
	case target.HasComponent(components.Enemy):
		killEnemy(w, target, now)
	case target.HasComponent(components.Dummy):
		damageDummy(w, target, amount, now)
	default:
		logger.For("combat").WithFields(logrus.Fields{
			"entity": target.Entity(),
		}).Debug("damage on actor without a damage contract")
	}
}

func killEnemy(w donburi.World, e *donburi.Entry, now float64) {
	enemy := components.Enemy.Get(e)
	death := components.Death.Get(e)
	physics := components.Physics.Get(e)

	death.Dead = true
	death.DiedAt = now
	physics.SetVelocityX(0)
	enemy.TurningTo = 0

	if enemy.Type != nil {
		death.Despawn = true
		death.DespawnAt = now + enemy.Type.DeathDespawnDelay
	}
	setAnimation(e, cfg.AnimDie, enemy.Direction, now)

	if entry, ok := components.HUD.First(w); ok {
		components.HUD.Get(entry).EnemiesDown++
	}
	components.EnemyDefeated.Publish(w, components.EnemyDefeatedEvent{Enemy: e, TypeName: enemy.TypeName})
}
