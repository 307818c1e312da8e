package components

import (
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the resolved display state. It is derived every frame and
// never read back as gameplay state, except for the state enum gates.
type AnimationData struct {
	Set       *cfg.AnimationSet
	State     cfg.AnimState
	Facing    cfg.Direction
	Key       string
	StartedAt float64

	WallSlideSide      cfg.Direction
	WallSlideHoldUntil float64

	LastX    float64
	HasLastX bool

	Warned map[string]bool
}

// Frame returns the frame index of the current key.
func (a *AnimationData) Frame(now, frameMs float64) int {
	if frameMs <= 0 || now < a.StartedAt {
		return 0
	}
	return int((now - a.StartedAt) / frameMs)
}

var Animation = donburi.NewComponentType[AnimationData]()
