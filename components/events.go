package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AttackHitEvent is published once per target per swing.
type AttackHitEvent struct {
	Target   *donburi.Entry
	Attacker *donburi.Entry
	Damage   int
}

type PlayerDiedEvent struct {
	Player *donburi.Entry
	Source *donburi.Entry
}

// DeathSequenceFinishedEvent fires when the death pan is over and the scene
// should be torn down.
type DeathSequenceFinishedEvent struct {
	Player *donburi.Entry
}

type EnemyDefeatedEvent struct {
	Enemy    *donburi.Entry
	TypeName string
}

var (
	AttackHit             = events.NewEventType[AttackHitEvent]()
	PlayerDied            = events.NewEventType[PlayerDiedEvent]()
	DeathSequenceFinished = events.NewEventType[DeathSequenceFinishedEvent]()
	EnemyDefeated         = events.NewEventType[EnemyDefeatedEvent]()
)

// HUDData collects what the overlay shows.
type HUDData struct {
	Hits        int
	EnemiesDown int
	LastDamage  int
}

var HUD = donburi.NewComponentType[HUDData]()
