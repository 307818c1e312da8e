package render

import (
	"image/color"

	"github.com/automoto/seekthescounge/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor = color.RGBA{70, 74, 96, 255}
	decorColor = color.RGBA{40, 44, 60, 255}
	edgeColor  = color.RGBA{110, 116, 150, 255}
)

// DrawLevel draws decoration tiles behind solid tiles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	for _, t := range level.DecorRects {
		if x, y, w, h, visible := v.rect(t.X, t.Y, t.W, t.H); visible {
			vector.FillRect(screen, x, y, w, h, decorColor, false)
		}
	}
	for _, t := range level.SolidRects {
		x, y, w, h, visible := v.rect(t.X, t.Y, t.W, t.H)
		if !visible {
			continue
		}
		vector.FillRect(screen, x, y, w, h, solidColor, false)
		// Top edge only where the tile is exposed.
		if !level.SolidAt(t.Col, t.Row-1) {
			vector.FillRect(screen, x, y, w, 1, edgeColor, false)
		}
	}
}
