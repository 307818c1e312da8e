package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/fonts"
	"github.com/automoto/seekthescounge/systems"
	"github.com/automoto/seekthescounge/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	outlineSolid     = color.RGBA{100, 100, 100, 255}
	outlinePlayer    = color.RGBA{0, 0, 255, 255}
	outlineEnemy     = color.RGBA{255, 0, 0, 255}
	outlineDefault   = color.RGBA{0, 255, 255, 255}
	outlineFrame     = color.RGBA{80, 80, 160, 255}
	hitboxColor      = color.RGBA{120, 20, 20, 120}
	overlayTextColor = color.RGBA{230, 230, 230, 255}
)

// DrawHitboxes outlines every collision object and fills live attack
// hitboxes.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvHitbox) {
			continue
		}
		x, y, w, h, visible := v.rect(obj.X, obj.Y, obj.W, obj.H)
		if !visible {
			continue
		}

		c := outlineDefault
		if obj.HasTags(tags.ResolvSolid) {
			c = outlineSolid
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = outlinePlayer
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = outlineEnemy
		}
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	// Drawn frames of bodies that carry an offset.
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		if (physics.OffsetX == 0 && physics.OffsetY == 0) || !entry.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(entry)
		fx, fy, fw, fh := physics.Frame(o.X, o.Y, o.W, o.H)
		if x, y, w, h, visible := v.rect(fx, fy, fw, fh); visible {
			vector.StrokeRect(screen, x, y, w, h, 1, outlineFrame, false)
		}
	})

	components.Attack.Each(e.World, func(entry *donburi.Entry) {
		hb, ok := systems.HitboxRect(entry)
		if !ok {
			return
		}
		if x, y, w, h, visible := v.rect(hb.X, hb.Y, hb.W, hb.H); visible {
			vector.FillRect(screen, x, y, w, h, hitboxColor, false)
		}
	})
}

// DrawDebug prints the controller's view of the first player.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	now := systems.Now(e.World)
	physics := components.Physics.Get(entry)
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)

	lines := []string{
		fmt.Sprintf("t=%.0f key=%s", now, anim.Key),
		fmt.Sprintf("v=(%.0f,%.0f) floor=%t", physics.Velocity.X, physics.Velocity.Y, physics.OnFloor()),
		fmt.Sprintf("blocked L%t R%t U%t", physics.Blocked.Left, physics.Blocked.Right, physics.Blocked.Up),
		fmt.Sprintf("slide=%t atk=%s", player.WallSlide.Active, AttackPhase(entry, now)),
		fmt.Sprintf("sup L%t R%t", systems.Suppressed(entry, cfg.DirLeft), systems.Suppressed(entry, cfg.DirRight)),
	}

	face := fonts.Mono.Get()
	height := face.Metrics().Height.Ceil()
	vector.FillRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(height*len(lines)+2), color.RGBA{0, 0, 0, 160}, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 2, height*(i+1), overlayTextColor)
	}
}

// AttackPhase names where the swing of entry is at now.
func AttackPhase(entry *donburi.Entry, now float64) string {
	if !entry.HasComponent(components.Attack) {
		return "none"
	}
	attack := components.Attack.Get(entry)
	switch {
	case attack.Active && attack.HitboxActive:
		return "active"
	case attack.Active:
		return "windup"
	case now < attack.CooldownUntil:
		return "cooldown"
	}
	return "ready"
}
