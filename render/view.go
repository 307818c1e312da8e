// Package render draws the simulation with flat shapes. Nothing here writes
// gameplay state.
package render

import (
	"github.com/automoto/seekthescounge/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)

// view maps world coordinates to screen coordinates through the camera.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func viewOf(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return view{
		camX:  camera.Position.X + camera.Offset.X,
		camY:  camera.Position.Y + camera.Offset.Y,
		zoom:  zoom,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v view) point(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

// rect returns the screen rectangle and whether any of it is visible.
func (v view) rect(x, y, w, h float64) (sx, sy, sw, sh float32, visible bool) {
	sx, sy = v.point(x, y)
	sw, sh = float32(w*v.zoom), float32(h*v.zoom)
	visible = sx+sw >= 0 && sy+sh >= 0 && float64(sx) <= v.halfW*2 && float64(sy) <= v.halfH*2
	return sx, sy, sw, sh, visible
}
