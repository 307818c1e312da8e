package systems

import (
	"github.com/automoto/seekthescounge/components"
	"github.com/yohamta/donburi"
)

// SubscribeHUD counts landed hits for the overlay.
func SubscribeHUD(w donburi.World) *Subscription {
	return Subscribe(w, components.AttackHit, func(w donburi.World, event components.AttackHitEvent) {
		entry, ok := components.HUD.First(w)
		if !ok {
			return
		}
		hud := components.HUD.Get(entry)
		hud.Hits++
		hud.LastDamage = event.Damage
	})
}
