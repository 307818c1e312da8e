package components

import (
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName  string
	Type      *cfg.EnemyTypeConfig
	Direction cfg.Direction

	LastDamageAt float64
	HasDamaged   bool

	// Chase state. TurningTo is zero when no turn is pending.
	Target       donburi.Entity
	HasTarget    bool
	TurningTo    cfg.Direction
	TurnResumeAt float64
}

// Turning reports whether a deferred flip is pending.
func (e *EnemyData) Turning() bool {
	return e.TurningTo != 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
