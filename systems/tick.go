package systems

import "github.com/yohamta/donburi"

// Tick advances the simulation by one frame. Movement and combat run before
// enemies, animation is resolved from the resulting state, and physics
// integrates last so contact flags are fresh for the next frame.
func Tick(w donburi.World, deltaMs float64) {
	AdvanceClock(w, deltaMs)
	UpdateScheduler(w)
	UpdatePlayers(w)
	UpdateEnemies(w)
	UpdateEnemyContacts(w)
	UpdateAnimations(w)
	UpdatePhysics(w)
	UpdateDummies(w)
	UpdateDespawns(w)
	UpdateCamera(w)
	ProcessEvents(w)
}
