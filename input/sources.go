package input

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Source reports the actions one device holds this frame.
type Source interface {
	Poll(state *[cfg.ActionCount]bool) (used bool)
	Method() components.InputMethod
}

// Keyboard reads the key half of Bindings.
type Keyboard struct{}

func (Keyboard) Method() components.InputMethod {
	return components.InputKeyboard
}

func (Keyboard) Poll(state *[cfg.ActionCount]bool) bool {
	var used bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				state[actionID] = true
				used = true
			}
		}
	}
	return used
}

// Gamepad reads every connected standard-layout gamepad. The left stick
// counts as a direction once it leaves the deadzone.
type Gamepad struct {
	Deadzone float64

	// Reusable slice for gamepad IDs to avoid allocations
	ids []ebiten.GamepadID
}

func (g *Gamepad) Method() components.InputMethod {
	return components.InputGamepad
}

func (g *Gamepad) Poll(state *[cfg.ActionCount]bool) bool {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])

	var used bool
	for _, gpID := range g.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for actionID, binding := range Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					state[actionID] = true
					used = true
				}
			}
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -g.Deadzone {
			state[cfg.ActionMoveLeft] = true
			used = true
		}
		if horizontal > g.Deadzone {
			state[cfg.ActionMoveRight] = true
			used = true
		}
	}
	return used
}
