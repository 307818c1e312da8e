package components

import (
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// Advance rolls the current frame into Previous and stores the new state.
func (d *InputData) Advance(next [cfg.ActionCount]bool) {
	d.Previous = d.Current
	d.Current = next
}

var Input = donburi.NewComponentType[InputData]()

// ControlData is the per-frame command a player actor consumes.
type ControlData struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Attack    bool
}

var Control = donburi.NewComponentType[ControlData]()
