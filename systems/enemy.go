package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/shared/gamemath"
	"github.com/automoto/seekthescounge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs the directional AI of every enemy.
func UpdateEnemies(w donburi.World) {
	now := Now(w)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		updateEnemy(w, e, now)
	})
}

// SetEnemyTarget points a chasing enemy at an actor.
func SetEnemyTarget(e, target *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	enemy.Target = target.Entity()
	enemy.HasTarget = true
}

func updateEnemy(w donburi.World, e *donburi.Entry, now float64) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)

	if IsDead(e) {
		if !KnockbackActive(e) {
			physics.SetVelocityX(0)
		}
		return
	}
	if enemy.Type == nil || !physics.Enabled {
		return
	}

	if enemy.Type.Behavior == cfg.BehaviorChase {
		updateChaser(w, e, enemy, now)
	}

	before := enemy.Direction
	if !KnockbackActive(e) {
		patrol(enemy, physics)
	}

	if enemy.Turning() && now < enemy.TurnResumeAt {
		enemy.Direction = before
		if !KnockbackActive(e) {
			physics.SetVelocityX(0)
		}
	}
}

// patrol walks in the current direction and bounces off anything in the way.
func patrol(enemy *components.EnemyData, physics *components.PhysicsData) {
	dir := enemy.Direction
	if physics.Blocked.Side(dir) || physics.Touching.Side(dir) {
		dir = dir.Opposite()
	}
	enemy.Direction = dir
	physics.SetVelocityX(dir.Sign() * enemy.Type.Speed)
}

// updateChaser turns the enemy toward its target. The target must be further
// away than the snapiness threshold before a turn commits, and a turnaround
// delay defers the flip. A deferred flip is dropped if the target crosses
// back first.
func updateChaser(w donburi.World, e *donburi.Entry, enemy *components.EnemyData, now float64) {
	target, ok := chaseTarget(w, enemy)
	if !ok || enemy.Type.Snapiness <= 0 {
		enemy.TurningTo = 0
		return
	}

	x := centerX(components.Object.Get(e).Object)
	tx := centerX(components.Object.Get(target).Object)
	desired := cfg.DirLeft
	if tx >= x {
		desired = cfg.DirRight
	}

	if enemy.Turning() {
		if desired == enemy.Direction {
			enemy.TurningTo = 0
		} else if now >= enemy.TurnResumeAt {
			enemy.Direction = enemy.TurningTo
			enemy.TurningTo = 0
		}
		return
	}

	if desired == enemy.Direction {
		return
	}
	if abs(tx-x) <= gamemath.FlipThreshold(enemy.Type.Snapiness) {
		return
	}

	if enemy.Type.TurnaroundDelay <= 0 {
		enemy.Direction = desired
		return
	}
	enemy.TurningTo = desired
	enemy.TurnResumeAt = now + enemy.Type.TurnaroundDelay
}

func chaseTarget(w donburi.World, enemy *components.EnemyData) (*donburi.Entry, bool) {
	if !enemy.HasTarget || !w.Valid(enemy.Target) {
		return nil, false
	}
	target := w.Entry(enemy.Target)
	if IsDead(target) || !target.HasComponent(components.Object) {
		return nil, false
	}
	return target, true
}

func centerX(obj *resolv.Object) float64 {
	return obj.X + obj.W/2
}

// TryDamage hurts target if the enemy is hostile and off cooldown. The
// cooldown is shared across all targets.
func TryDamage(w donburi.World, e, target *donburi.Entry) bool {
	enemy := components.Enemy.Get(e)
	if enemy.Type == nil || enemy.Type.Behavior == cfg.BehaviorPassive || IsDead(e) {
		return false
	}
	now := Now(w)
	if enemy.HasDamaged && now-enemy.LastDamageAt < enemy.Type.DamageCooldown {
		return false
	}

	TakeDamage(w, target, enemy.Type.Damage, e)
	enemy.LastDamageAt = now
	enemy.HasDamaged = true
	return true
}

// UpdateEnemyContacts lets each live enemy try to damage the players it
// touches.
func UpdateEnemyContacts(w donburi.World) {
	p := cfg.Physics.ContactProbe
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if IsDead(e) {
			return
		}
		obj := components.Object.Get(e).Object
		seen := map[*resolv.Object]bool{}
		for _, dx := range []float64{0, -p, p} {
			for _, hit := range overlapsAt(obj, dx, 0, tags.ResolvPlayer) {
				if seen[hit] {
					continue
				}
				seen[hit] = true
				target, ok := hit.Data.(*donburi.Entry)
				if !ok || IsDead(target) {
					continue
				}
				TryDamage(w, e, target)
			}
		}
	})
}
