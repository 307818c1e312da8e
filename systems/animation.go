package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/logger"
	"github.com/automoto/seekthescounge/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateAnimations derives the display state of every actor from the frame's
// physics and combat state. Dead actors and swinging players keep what was
// forced on them.
func UpdateAnimations(w donburi.World) {
	now := Now(w)

	tags.Player.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		x := components.Object.Get(e).X
		if !IsDead(e) && !IsAttackInProgress(e) {
			state, facing := ResolveAnimation(e, now)
			setAnimation(e, state, facing, now)
		}
		anim.LastX = x
		anim.HasLastX = true
	})

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if IsDead(e) {
			return
		}
		setAnimation(e, cfg.AnimRunning, components.Enemy.Get(e).Direction, now)
	})
}

// ResolveAnimation picks a player's display state in priority order: wall
// slide, rise or fall, running, idle. When none applies the current state is
// kept.
func ResolveAnimation(e *donburi.Entry, now float64) (cfg.AnimState, cfg.Direction) {
	anim := components.Animation.Get(e)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object
	onFloor := physics.OnFloor()
	facing := player.LastDirection

	if player.WallSlide.Active {
		anim.WallSlideSide = player.WallSlide.Side
		anim.WallSlideHoldUntil = now + cfg.Animation.WallSlideHoldMs
		return cfg.AnimWallSlide, anim.WallSlideSide.Opposite()
	}
	if !onFloor && physics.Velocity.Y >= 0 && now < anim.WallSlideHoldUntil {
		return cfg.AnimWallSlide, anim.WallSlideSide.Opposite()
	}
	anim.WallSlideHoldUntil = 0

	if !onFloor && abs(physics.Velocity.Y) > cfg.Animation.AirborneVelocityThreshold {
		if physics.Velocity.Y < 0 {
			return cfg.AnimRising, facing
		}
		return cfg.AnimFalling, facing
	}

	if anim.HasLastX {
		dx := obj.X - anim.LastX
		moveDir := cfg.DirectionOf(dx, facing)
		if abs(dx) > cfg.Animation.MoveDeltaThreshold && !physics.Blocked.Side(moveDir) {
			return cfg.AnimRunning, moveDir
		}
	}

	if onFloor {
		return cfg.AnimIdle, facing
	}

	switch anim.State {
	case cfg.AnimNone, cfg.AnimAttack, cfg.AnimMovingAttack, cfg.AnimDie:
		return cfg.AnimFalling, facing
	}
	return anim.State, anim.Facing
}

// setAnimation applies a state and refreshes the key. The frame timer
// restarts on a new key, except when running just changes direction.
func setAnimation(e *donburi.Entry, state cfg.AnimState, facing cfg.Direction, now float64) {
	if !e.HasComponent(components.Animation) {
		return
	}
	anim := components.Animation.Get(e)
	key := animationKey(e, anim, state, facing)

	if key != anim.Key {
		keepTimer := state == cfg.AnimRunning && anim.State == cfg.AnimRunning
		if !keepTimer {
			anim.StartedAt = now
		}
	}
	anim.State = state
	anim.Facing = facing
	anim.Key = key
}

// animationKey resolves the art key, falling back to a visible placeholder
// when the set has no art for the state.
func animationKey(e *donburi.Entry, anim *components.AnimationData, state cfg.AnimState, facing cfg.Direction) string {
	if anim.Set != nil && anim.Set.Has(state) {
		return anim.Set.Key(state, facing)
	}

	wanted := state.String() + "-" + facing.String()
	if anim.Set != nil {
		wanted = anim.Set.Key(state, facing)
	}
	if anim.Warned == nil {
		anim.Warned = map[string]bool{}
	}
	if !anim.Warned[wanted] {
		anim.Warned[wanted] = true
		logger.For("animation").WithFields(logrus.Fields{
			"entity": e.Entity(),
			"key":    wanted,
		}).Warn("animation key missing, using fallback")
	}
	return cfg.Animation.FallbackKey
}
