package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayers runs the movement controller for every player with the
// command stored in its Control component.
func UpdatePlayers(w donburi.World) {
	now := Now(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		UpdatePlayerEntry(w, e, *components.Control.Get(e), now)
	})
}

// UpdatePlayer feeds one frame of input to a player actor.
func UpdatePlayer(w donburi.World, e *donburi.Entry, moveLeft, moveRight, jump, attack bool) {
	UpdatePlayerEntry(w, e, components.ControlData{
		MoveLeft:  moveLeft,
		MoveRight: moveRight,
		Jump:      jump,
		Attack:    attack,
	}, Now(w))
}

// UpdatePlayerEntry resolves input and contact flags into velocity, jumps,
// wall interactions and attack starts, then advances the swing.
func UpdatePlayerEntry(w donburi.World, e *donburi.Entry, in components.ControlData, now float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	death := components.Death.Get(e)
	char := player.Character

	if death.Dead || !physics.Enabled || char == nil {
		physics.SetVelocityX(0)
		updateAttack(w, e, now, false)
		player.JumpPressedLastFrame = in.Jump
		player.AttackPressedLastFrame = in.Attack
		return
	}

	onFloor := physics.OnFloor()
	if onFloor && !player.WasOnFloor && player.WallSlide.Active {
		openSuppression(player, player.WallSlide.Side, now, char.WallSlide.LandingSuppressMs)
	}

	wantsLeft := in.MoveLeft && !in.MoveRight
	wantsRight := in.MoveRight && !in.MoveLeft
	wantsLeft = applySuppression(player, cfg.DirLeft, in.MoveLeft, wantsLeft, now)
	wantsRight = applySuppression(player, cfg.DirRight, in.MoveRight, wantsRight, now)

	resolveHorizontal(physics, player, char, onFloor, wantsLeft, wantsRight)

	sliding := detectWallSlide(w, e, player, physics, onFloor)

	if in.Jump && onFloor {
		physics.SetVelocityY(-char.JumpSpeed)
	} else {
		tryWallJump(player, physics, char, in.Jump, onFloor, sliding, now)
	}

	if in.Attack && !player.AttackPressedLastFrame && canStartAttack(e, char) {
		StartAttack(w, e, now)
	}

	updateAttack(w, e, now, true)

	player.JumpPressedLastFrame = in.Jump
	player.AttackPressedLastFrame = in.Attack
	player.WasOnFloor = onFloor
}

// resolveHorizontal picks drag by floor contact and sets vx. In the air the
// current velocity is kept unless a direction is held.
func resolveHorizontal(physics *components.PhysicsData, player *components.PlayerData, char *cfg.CharacterConfig, onFloor, wantsLeft, wantsRight bool) {
	vx := physics.Velocity.X
	if onFloor {
		physics.SetDragX(char.GroundDragX)
		vx = 0
	} else {
		physics.SetDragX(char.AirDragX)
	}

	switch {
	case wantsLeft:
		player.LastDirection = cfg.DirLeft
		if !physics.Blocked.Left {
			vx = -char.Speed
		}
	case wantsRight:
		player.LastDirection = cfg.DirRight
		if !physics.Blocked.Right {
			vx = char.Speed
		}
	}

	if vx != 0 && physics.Blocked.Side(cfg.DirectionOf(vx, player.LastDirection)) {
		vx = 0
	}
	physics.SetVelocityX(vx)
}

func suppressionIndex(dir cfg.Direction) int {
	if dir == cfg.DirLeft {
		return 0
	}
	return 1
}

// openSuppression starts a window on dir lasting ms.
func openSuppression(player *components.PlayerData, dir cfg.Direction, now, ms float64) {
	if ms <= 0 {
		return
	}
	player.Suppression[suppressionIndex(dir)] = components.SuppressionWindow{ResumeAt: now + ms}
}

// applySuppression filters the wanted flag for dir. Releasing the key clears
// the window. A press seen while the window is open latches until release.
func applySuppression(player *components.PlayerData, dir cfg.Direction, held, wanted bool, now float64) bool {
	win := &player.Suppression[suppressionIndex(dir)]
	if !held {
		*win = components.SuppressionWindow{}
		return wanted
	}
	if now < win.ResumeAt {
		win.Latched = true
	}
	if win.Latched {
		return false
	}
	return wanted
}

// Suppressed reports whether dir is currently ignored for the player.
func Suppressed(e *donburi.Entry, dir cfg.Direction) bool {
	return components.Player.Get(e).Suppression[suppressionIndex(dir)].Latched
}

func canStartAttack(e *donburi.Entry, char *cfg.CharacterConfig) bool {
	if char.AttackWhileWallSliding {
		return true
	}
	return components.Animation.Get(e).State != cfg.AnimWallSlide
}

// SetAttackTargets replaces the resolv tags the player's hitbox hits.
func SetAttackTargets(e *donburi.Entry, targets ...string) {
	components.Attack.Get(e).Targets = append([]string(nil), targets...)
}

// IsAttackInProgress reports whether the actor is mid-swing.
func IsAttackInProgress(e *donburi.Entry) bool {
	if !e.HasComponent(components.Attack) {
		return false
	}
	return components.Attack.Get(e).InProgress()
}
