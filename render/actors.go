package render

import (
	"image/color"

	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/systems"
	"github.com/automoto/seekthescounge/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	playerColors = map[string]color.RGBA{
		"rovert": {86, 170, 255, 255},
		"shuey":  {255, 170, 60, 255},
	}
	defaultPlayerColor = color.RGBA{120, 220, 120, 255}
	enemyColor         = color.RGBA{220, 70, 80, 255}
	dummyColor         = color.RGBA{190, 160, 110, 255}
	facingColor        = color.RGBA{255, 255, 255, 255}
)

// stateTint darkens or lightens the body so state changes are visible
// without art.
var stateTint = map[cfg.AnimState]float64{
	cfg.AnimRising:       1.15,
	cfg.AnimFalling:      0.85,
	cfg.AnimWallSlide:    0.7,
	cfg.AnimAttack:       1.3,
	cfg.AnimMovingAttack: 1.3,
	cfg.AnimDie:          0.5,
}

// DrawActors draws every actor body. Dying actors fade out over their
// despawn delay and the dummy flashes white when hit.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}
	now := systems.Now(e.World)

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		x, y, w, h, visible := v.rect(o.X, o.Y, o.W, o.H)
		if !visible {
			return
		}

		c := actorColor(entry)
		if entry.HasComponent(components.Animation) {
			anim := components.Animation.Get(entry)
			if tint, ok := stateTint[anim.State]; ok {
				c = scale(c, tint)
			}
			// Two-frame bob while running.
			if anim.State == cfg.AnimRunning && anim.Frame(now, cfg.Animation.FrameMs)%2 == 1 {
				y -= float32(v.zoom)
			}
		}
		if entry.HasComponent(components.Dummy) {
			c = mix(c, facingColor, float64(components.Dummy.Get(entry).FlashLevel))
		}
		alpha := 1 - systems.DespawnProgress(e.World, entry)
		c = fade(c, alpha)

		vector.FillRect(screen, x, y, w, h, c, false)
		drawFacing(screen, entry, x, y, w, h, alpha)
	})
}

func actorColor(entry *donburi.Entry) color.RGBA {
	switch {
	case entry.HasComponent(components.Player):
		if c, ok := playerColors[components.Player.Get(entry).CharacterID]; ok {
			return c
		}
		return defaultPlayerColor
	case entry.HasComponent(components.Enemy):
		return enemyColor
	}
	return dummyColor
}

// drawFacing marks the side the actor faces with an eye.
func drawFacing(screen *ebiten.Image, entry *donburi.Entry, x, y, w, h float32, alpha float64) {
	if !entry.HasComponent(components.Animation) {
		return
	}
	facing := components.Animation.Get(entry).Facing
	if facing == 0 {
		return
	}
	size := max(w/6, 1)
	ex := x + w - 2*size
	if facing == cfg.DirLeft {
		ex = x + size
	}
	vector.FillRect(screen, ex, y+h/4, size, size, fade(facingColor, alpha), false)
}

func scale(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 { return uint8(min(float64(v)*f, 255)) }
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	ch := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), ch(a.A, b.A)}
}

// fade scales every channel since color.RGBA is premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		uint8(float64(c.R) * alpha),
		uint8(float64(c.G) * alpha),
		uint8(float64(c.B) * alpha),
		uint8(float64(c.A) * alpha),
	}
}
