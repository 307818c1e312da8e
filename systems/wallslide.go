package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/yohamta/donburi"
)

// detectWallSlide decides whether the player is sliding this frame and, if
// so, slows the fall. A slide needs a falling airborne body pressed against
// a wall on its facing side.
func detectWallSlide(w donburi.World, e *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, onFloor bool) bool {
	char := player.Character
	side := player.LastDirection

	sliding := char.WallSlide.Enabled &&
		!onFloor &&
		physics.Velocity.Y > 0 &&
		physics.Blocked.Side(side)

	if sliding && char.WallSlide.RequireStackedWall {
		sliding = stackedWall(w, e, side)
	}

	if !sliding {
		player.WallSlide.Active = false
		return false
	}

	physics.SetVelocityY(physics.Velocity.Y * char.WallSlideFallSpeedFactor)
	player.WallSlide = components.WallSlideState{Active: true, Side: side}
	return true
}

// stackedWall checks that the tile beside the body and the tile above it
// are both solid, so a one-tile lip cannot be slid on.
func stackedWall(w donburi.World, e *donburi.Entry, side cfg.Direction) bool {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return false
	}

	obj := components.Object.Get(e).Object
	probeX := obj.X - 1
	if side == cfg.DirRight {
		probeX = obj.X + obj.W + 1
	}
	col, row := level.TileAt(probeX, obj.Y+obj.H/2)
	return level.SolidAt(col, row) && level.SolidAt(col, row-1)
}

// tryWallJump launches the player away from the wall it slides on. It needs
// a fresh jump press, so holding jump into a slide does not fire.
func tryWallJump(player *components.PlayerData, physics *components.PhysicsData, char *cfg.CharacterConfig, jump, onFloor, sliding bool, now float64) bool {
	wj := char.WallJump
	if !wj.Enabled || onFloor || !sliding || !jump || player.JumpPressedLastFrame {
		return false
	}

	wall := player.WallSlide.Side
	away := wall.Opposite()
	physics.SetVelocity(away.Sign()*wj.HorizontalSpeed, -wj.VerticalSpeed)
	player.LastDirection = away
	player.WallSlide.Active = false
	openSuppression(player, wall, now, wj.SuppressMs)
	return true
}
