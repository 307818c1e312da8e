package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// damageDummy counts the hit and flashes. After enough hits the dummy snaps
// back to where it was placed.
func damageDummy(w donburi.World, e *donburi.Entry, amount int, now float64) {
	dummy := components.Dummy.Get(e)
	dummy.HitsTaken += amount
	dummy.Flash = gween.New(1, 0, float32(cfg.Dummy.FlashMs), ease.Linear)
	dummy.FlashLevel = 1

	if dummy.HitsTaken >= cfg.Dummy.ResetHits {
		resetDummy(w, e)
	}
}

func resetDummy(w donburi.World, e *donburi.Entry) {
	dummy := components.Dummy.Get(e)
	dummy.HitsTaken = 0

	CancelFor(w, e, knockbackSlotX)
	CancelFor(w, e, knockbackSlotY)
	*components.Knockback.Get(e) = components.KnockbackData{}

	physics := components.Physics.Get(e)
	physics.SetVelocity(0, 0)

	obj := components.Object.Get(e).Object
	obj.X = dummy.SpawnX - obj.W/2
	obj.Y = dummy.SpawnY - obj.H
	if obj.Space != nil {
		obj.Update()
	}
}

// UpdateDummies fades the hit flash.
func UpdateDummies(w donburi.World) {
	dt := float32(Delta(w))
	tags.Dummy.Each(w, func(e *donburi.Entry) {
		dummy := components.Dummy.Get(e)
		if dummy.Flash == nil {
			return
		}
		level, done := dummy.Flash.Update(dt)
		dummy.FlashLevel = level
		if done {
			dummy.Flash = nil
			dummy.FlashLevel = 0
		}
	})
}
