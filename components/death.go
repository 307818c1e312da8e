package components

import "github.com/yohamta/donburi"

// DeathData is attached to every actor at spawn. Dead is terminal.
type DeathData struct {
	Dead      bool
	DiedAt    float64
	DespawnAt float64
	Despawn   bool // remove the entity once the clock passes DespawnAt
}

var Death = donburi.NewComponentType[DeathData]()
