package systems

import (
	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/tags"
	"github.com/yohamta/donburi"
)

// UpdateDespawns removes dead actors whose despawn time has come.
func UpdateDespawns(w donburi.World) {
	now := Now(w)

	var due []*donburi.Entry
	tags.Actor.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Dead && death.Despawn && now >= death.DespawnAt {
			due = append(due, e)
		}
	})

	for _, e := range due {
		removeActor(w, e)
	}
}

func removeActor(w donburi.World, e *donburi.Entry) {
	if obj := components.Object.Get(e).Object; obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
	if e.HasComponent(components.Attack) {
		if hb := components.Attack.Get(e).Hitbox; hb != nil && hb.Space != nil {
			hb.Space.Remove(hb)
		}
	}
	CancelFor(w, e, knockbackSlotX)
	CancelFor(w, e, knockbackSlotY)
	w.Remove(e.Entity())
}

// DespawnProgress returns how far a dying actor is through its despawn
// delay, from 0 at death to 1 at removal. Renderers fade with it.
func DespawnProgress(w donburi.World, e *donburi.Entry) float64 {
	death := components.Death.Get(e)
	if !death.Dead || !death.Despawn {
		return 0
	}
	span := death.DespawnAt - death.DiedAt
	if span <= 0 {
		return 1
	}
	return min(max((Now(w)-death.DiedAt)/span, 0), 1)
}
