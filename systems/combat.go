package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func spaceOf(w donburi.World) *resolv.Space {
	if entry, ok := components.Space.First(w); ok {
		return components.Space.Get(entry)
	}
	return nil
}

// StartAttack begins a swing if none is running and the cooldown has passed.
// The moving variant is chosen here from the current speed and stays fixed
// until the swing ends.
func StartAttack(w donburi.World, e *donburi.Entry, now float64) bool {
	attack := components.Attack.Get(e)
	if attack.Active || now < attack.CooldownUntil {
		return false
	}

	conf, moving := chooseAttackConfig(e)
	if conf == nil {
		return false
	}
	swing := *conf

	attack.Config = &swing
	attack.Moving = moving
	attack.Active = true
	attack.HitboxActive = false
	attack.StartedAt = now
	attack.HitboxActivatesAt = now + swing.StartDelay
	attack.ActiveUntil = attack.HitboxActivatesAt + swing.Duration
	attack.CooldownUntil = attack.ActiveUntil + swing.Cooldown

	onAttackStart(e, now, moving)
	return true
}

func chooseAttackConfig(e *donburi.Entry) (*cfg.AttackConfig, bool) {
	if !e.HasComponent(components.Player) {
		return nil, false
	}
	char := components.Player.Get(e).Character
	if char == nil {
		return nil, false
	}
	vx := components.Physics.Get(e).Velocity.X
	if char.MovingAttack != nil && abs(vx) > char.MovingAttackSpeedThreshold {
		return char.MovingAttack, true
	}
	return &char.Attack, false
}

// onAttackStart forces the attack animation for the swing.
func onAttackStart(e *donburi.Entry, now float64, moving bool) {
	if !e.HasComponent(components.Animation) {
		return
	}
	state := cfg.AnimAttack
	if moving {
		state = cfg.AnimMovingAttack
	}
	facing := cfg.DirRight
	if e.HasComponent(components.Player) {
		facing = components.Player.Get(e).LastDirection
	}
	setAnimation(e, state, facing, now)
}

// onAttackEnd hands the display state back to the resolver. A dead
// attacker keeps its death animation.
func onAttackEnd(e *donburi.Entry) {
	if !e.HasComponent(components.Animation) || IsDead(e) {
		return
	}
	components.Animation.Get(e).State = cfg.AnimNone
}

// updateAttack moves the swing through windup, active and done. Hits are
// only resolved when live is set; a dead attacker lets the swing run out.
func updateAttack(w donburi.World, e *donburi.Entry, now float64, live bool) {
	attack := components.Attack.Get(e)
	if !attack.Active {
		return
	}

	if now >= attack.ActiveUntil {
		endSwing(w, e, attack)
		return
	}

	if now < attack.HitboxActivatesAt {
		return
	}

	if !attack.HitboxActive {
		activateHitbox(w, e, attack)
	}
	positionHitbox(e, attack)

	if live {
		resolveHits(w, e, attack, now)
	}
}

func activateHitbox(w donburi.World, e *donburi.Entry, attack *components.AttackData) {
	attack.HitboxActive = true
	clear(attack.HitsThisSwing)
	if attack.HitsThisSwing == nil {
		attack.HitsThisSwing = make(map[donburi.Entity]struct{})
	}

	if attack.Hitbox == nil {
		attack.Hitbox = resolv.NewObject(0, 0, 0, 0, tags.ResolvHitbox)
		attack.Hitbox.Data = e
	}
	attack.Hitbox.W = attack.Config.Width
	attack.Hitbox.H = attack.Config.Height
	if space := spaceOf(w); space != nil {
		space.Add(attack.Hitbox)
	}
}

func endSwing(w donburi.World, e *donburi.Entry, attack *components.AttackData) {
	if attack.Hitbox != nil && attack.Hitbox.Space != nil {
		attack.Hitbox.Space.Remove(attack.Hitbox)
	}
	attack.Active = false
	attack.HitboxActive = false
	onAttackEnd(e)
}

// positionHitbox places the box in front of the body, mirrored by facing.
func positionHitbox(e *donburi.Entry, attack *components.AttackData) {
	body := components.Object.Get(e).Object
	conf := attack.Config
	facing := cfg.DirRight
	if e.HasComponent(components.Player) {
		facing = components.Player.Get(e).LastDirection
	}

	hb := attack.Hitbox
	if facing == cfg.DirRight {
		hb.X = body.X + body.W + conf.Reach
	} else {
		hb.X = body.X - conf.Reach - conf.Width
	}
	hb.Y = body.Y + body.H/2 + conf.VerticalOffset - conf.Height/2
	if hb.Space != nil {
		hb.Update()
	}
}

// HitboxRect returns the live hitbox of an attacker, if any.
func HitboxRect(e *donburi.Entry) (*resolv.Object, bool) {
	if !e.HasComponent(components.Attack) {
		return nil, false
	}
	attack := components.Attack.Get(e)
	if !attack.HitboxActive || attack.Hitbox == nil {
		return nil, false
	}
	return attack.Hitbox, true
}

func resolveHits(w donburi.World, attacker *donburi.Entry, attack *components.AttackData, now float64) {
	if len(attack.Targets) == 0 {
		return
	}
	for _, obj := range OverlapQuery(attack.Hitbox, attack.Targets...) {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || target == attacker || !target.Valid() {
			continue
		}
		if _, hit := attack.HitsThisSwing[target.Entity()]; hit {
			continue
		}
		if IsDead(target) {
			continue
		}
		attack.HitsThisSwing[target.Entity()] = struct{}{}
		applyHit(w, attacker, target, attack.Config, now)
	}
}

// applyHit resolves damage, then knockback, then tells listeners.
func applyHit(w donburi.World, attacker, target *donburi.Entry, conf *cfg.AttackConfig, now float64) {
	TakeDamage(w, target, conf.Damage, attacker)

	facing := cfg.DirRight
	if attacker.HasComponent(components.Player) {
		facing = components.Player.Get(attacker).LastDirection
	}
	ApplyKnockback(w, target, facing, conf.Knockback, now)

	components.AttackHit.Publish(w, components.AttackHitEvent{
		Target:   target,
		Attacker: attacker,
		Damage:   conf.Damage,
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
