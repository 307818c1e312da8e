package components

import "github.com/yohamta/donburi"

// KnockbackRecord remembers the last knockback on one axis. The scheduled
// reset only zeroes the axis if the record still matches what it applied;
// ExpiresAt tells apart two pushes with the same velocity.
type KnockbackRecord struct {
	Velocity  float64
	ExpiresAt float64
	Active    bool
}

type KnockbackData struct {
	X KnockbackRecord
	Y KnockbackRecord
}

// Active reports whether either axis is still being pushed.
func (k *KnockbackData) Active() bool {
	return k.X.Active || k.Y.Active
}

var Knockback = donburi.NewComponentType[KnockbackData]()
