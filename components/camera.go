package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64

	// Death pan. Follow is suspended while Locked.
	Locked bool
	PanX   *gween.Tween
	PanY   *gween.Tween
	PanZ   *gween.Tween

	ShakeUntil     float64
	ShakeIntensity float64
	Offset         math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
