package components

import (
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/yohamta/donburi"
)

// SuppressionWindow blocks one input direction. While the window is open a
// held press latches it; a latched direction stays ignored until released.
type SuppressionWindow struct {
	ResumeAt float64
	Latched  bool
}

// WallSlideState is the controller's view of the current wall contact.
type WallSlideState struct {
	Active bool
	Side   cfg.Direction // wall side relative to the player
}

type PlayerData struct {
	CharacterID   string
	Character     *cfg.CharacterConfig
	LastDirection cfg.Direction

	// Indexed by suppressionIndex; left then right.
	Suppression [2]SuppressionWindow

	JumpPressedLastFrame   bool
	AttackPressedLastFrame bool
	WasOnFloor             bool
	WallSlide              WallSlideState
}

var Player = donburi.NewComponentType[PlayerData]()
