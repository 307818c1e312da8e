package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/shared/gamemath"
	"github.com/yohamta/donburi"
)

const (
	knockbackSlotX = "knockback-x"
	knockbackSlotY = "knockback-y"
)

// ApplyKnockback turns the configured push into velocity on each axis and
// schedules the reset. A newer push on the same axis makes the older reset a
// no-op.
func ApplyKnockback(w donburi.World, target *donburi.Entry, facing cfg.Direction, kb cfg.KnockbackConfig, now float64) {
	if !target.HasComponent(components.Knockback) || !target.HasComponent(components.Physics) {
		return
	}
	physics := components.Physics.Get(target)
	if physics.Immovable || !physics.Enabled {
		return
	}
	if kb.Duration <= 0 {
		return
	}

	expires := now + kb.Duration
	if kb.Horizontal != 0 {
		vx := facing.Sign() * gamemath.KnockbackVelocity(kb.Horizontal, kb.Duration)
		physics.SetVelocityX(vx)
		pushAxis(w, target, knockbackSlotX, vx, expires, func(k *components.KnockbackData) *components.KnockbackRecord { return &k.X },
			func(p *components.PhysicsData) { p.SetVelocityX(0) })
	}
	if kb.Vertical != 0 {
		vy := -gamemath.KnockbackVelocity(kb.Vertical, kb.Duration)
		physics.SetVelocityY(vy)
		pushAxis(w, target, knockbackSlotY, vy, expires, func(k *components.KnockbackData) *components.KnockbackRecord { return &k.Y },
			func(p *components.PhysicsData) { p.SetVelocityY(0) })
	}
}

func pushAxis(
	w donburi.World,
	target *donburi.Entry,
	slot string,
	velocity, expires float64,
	axis func(*components.KnockbackData) *components.KnockbackRecord,
	zero func(*components.PhysicsData),
) {
	applied := components.KnockbackRecord{Velocity: velocity, ExpiresAt: expires, Active: true}
	*axis(components.Knockback.Get(target)) = applied

	ScheduleFor(w, target, slot, expires, func(float64) {
		if !target.Valid() {
			return
		}
		rec := axis(components.Knockback.Get(target))
		if *rec != applied {
			return
		}
		rec.Active = false
		zero(components.Physics.Get(target))
	})
}

// KnockbackActive reports whether any axis of target is being pushed.
func KnockbackActive(target *donburi.Entry) bool {
	if !target.HasComponent(components.Knockback) {
		return false
	}
	return components.Knockback.Get(target).Active()
}
