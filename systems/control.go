package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/yohamta/donburi"
)

// ApplyInput stores one polled frame in the Input singleton and hands the
// resulting command to every player. Must run BEFORE Tick.
func ApplyInput(w donburi.World, next [cfg.ActionCount]bool, method components.InputMethod) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	input.Advance(next)

	for _, pressed := range next {
		if pressed {
			input.LastInputMethod = method
			break
		}
	}

	control := ControlFrom(input)
	tags.Player.Each(w, func(e *donburi.Entry) {
		components.Control.SetValue(e, control)
	})
}

// ControlFrom maps held actions to a movement command. Jump and attack are
// level signals; the controller does its own edge detection.
func ControlFrom(input *components.InputData) components.ControlData {
	return components.ControlData{
		MoveLeft:  input.Pressed(cfg.ActionMoveLeft),
		MoveRight: input.Pressed(cfg.ActionMoveRight),
		Jump:      input.Pressed(cfg.ActionJump),
		Attack:    input.Pressed(cfg.ActionAttack),
	}
}

// InputState returns the Input singleton, or nil before the world has one.
func InputState(w donburi.World) *components.InputData {
	if entry, ok := components.Input.First(w); ok {
		return components.Input.Get(entry)
	}
	return nil
}
