package input

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
)

// Controller ORs its sources into one action state.
type Controller struct {
	Sources []Source
}

// NewController polls the keyboard and all gamepads.
func NewController() *Controller {
	return &Controller{
		Sources: []Source{
			Keyboard{},
			&Gamepad{Deadzone: cfg.Input.AnalogDeadzone},
		},
	}
}

// Poll returns the merged state and the method of the last source that
// reported input, defaulting to the keyboard.
func (c *Controller) Poll() (state [cfg.ActionCount]bool, method components.InputMethod) {
	method = components.InputKeyboard
	for _, src := range c.Sources {
		if src.Poll(&state) {
			method = src.Method()
		}
	}
	return state, method
}
