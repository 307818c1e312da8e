package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Direction is a horizontal facing. The value doubles as a velocity sign.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

func (d Direction) Opposite() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// DirectionOf returns the facing that matches the sign of v. Zero maps to
// fallback.
func DirectionOf(v float64, fallback Direction) Direction {
	switch {
	case v < 0:
		return DirLeft
	case v > 0:
		return DirRight
	}
	return fallback
}

// AnimState identifies a display state. Gameplay gates compare these values,
// never animation key strings.
type AnimState int

const (
	AnimNone AnimState = iota
	AnimIdle
	AnimRunning
	AnimRising
	AnimFalling
	AnimWallSlide
	AnimAttack
	AnimMovingAttack
	AnimDie
)

var animStateNames = map[AnimState]string{
	AnimIdle:         "idle",
	AnimRunning:      "running",
	AnimRising:       "rising",
	AnimFalling:      "falling",
	AnimWallSlide:    "wall-slide",
	AnimAttack:       "attack",
	AnimMovingAttack: "moving-attack",
	AnimDie:          "die",
}

func (s AnimState) String() string {
	if name, ok := animStateNames[s]; ok {
		return name
	}
	return "none"
}

// ParseAnimState maps a tuning file name back to its state.
func ParseAnimState(name string) (AnimState, bool) {
	for state, n := range animStateNames {
		if n == name {
			return state, true
		}
	}
	return AnimNone, false
}

// EnemyBehavior selects the directional AI of an enemy type.
type EnemyBehavior int

const (
	BehaviorPatrol EnemyBehavior = iota
	BehaviorChase
	BehaviorPassive
)

var behaviorNames = map[EnemyBehavior]string{
	BehaviorPatrol:  "patrol",
	BehaviorChase:   "chase",
	BehaviorPassive: "passive",
}

func (b EnemyBehavior) String() string {
	return behaviorNames[b]
}

func (b *EnemyBehavior) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for behavior, n := range behaviorNames {
		if strings.EqualFold(n, name) {
			*b = behavior
			return nil
		}
	}
	return fmt.Errorf("unknown enemy behavior %q", name)
}
