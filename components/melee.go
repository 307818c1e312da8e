package components

import (
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// AttackData is the swing state of an attacker. Times are absolute clock ms.
type AttackData struct {
	Config *cfg.AttackConfig // chosen at swing start, fixed for the swing
	Moving bool              // the moving variant was chosen

	Active            bool
	HitboxActive      bool
	StartedAt         float64
	HitboxActivatesAt float64
	ActiveUntil       float64
	CooldownUntil     float64

	HitsThisSwing map[donburi.Entity]struct{}
	Hitbox        *resolv.Object
	Targets       []string // resolv tags queried while the hitbox is active
}

// InProgress reports whether a swing is running.
func (a *AttackData) InProgress() bool {
	return a.Active
}

var Attack = donburi.NewComponentType[AttackData]()
