package config

// ActionID is a logical input, independent of the device that produced it.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionMenuSelect
	ActionMenuBack
	ActionToggleDebug
	ActionCount // array size; keep last
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move-left",
	ActionMoveRight:   "move-right",
	ActionJump:        "jump",
	ActionAttack:      "attack",
	ActionMenuSelect:  "menu-select",
	ActionMenuBack:    "menu-back",
	ActionToggleDebug: "toggle-debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds device-independent input tuning. Key and button
// bindings live with the input package.
type InputConfig struct {
	AnalogDeadzone float64 // stick deflection in [0, 1] below which input is ignored
}

var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
