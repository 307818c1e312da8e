package systems

import (
	"math"

	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera follows the first player, or plays the death pan while the
// camera is locked.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	now := Now(w)

	updateScreenShake(camera, now)

	if camera.Locked {
		updatePan(camera, float32(Delta(w)))
		return
	}

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2 + config.Camera.OffsetX
	targetY := playerObject.Y + playerObject.H/2 + config.Camera.OffsetY

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	// Keep the level filling the screen.
	targetX = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, targetX))
	targetY = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowLerp
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowLerp
}

func updatePan(camera *components.CameraData, dt float32) {
	if camera.PanX != nil {
		x, _ := camera.PanX.Update(dt)
		camera.Position.X = float64(x)
	}
	if camera.PanY != nil {
		y, _ := camera.PanY.Update(dt)
		camera.Position.Y = float64(y)
	}
	if camera.PanZ != nil {
		z, _ := camera.PanZ.Update(dt)
		camera.Zoom = float64(z)
	}
}

// updateScreenShake sets a decaying oscillating offset until the shake ends.
func updateScreenShake(camera *components.CameraData, now float64) {
	if now >= camera.ShakeUntil || config.Camera.ShakeMs <= 0 {
		camera.Offset.X, camera.Offset.Y = 0, 0
		return
	}
	progress := (camera.ShakeUntil - now) / config.Camera.ShakeMs
	intensity := camera.ShakeIntensity * progress
	camera.Offset.X = math.Sin(now*0.07) * intensity
	camera.Offset.Y = math.Cos(now*0.09) * intensity
}

// TriggerScreenShake starts a shake unless a stronger one is running.
func TriggerScreenShake(w donburi.World, intensity float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	now := Now(w)
	if now < camera.ShakeUntil && intensity < camera.ShakeIntensity {
		return
	}
	camera.ShakeIntensity = intensity
	camera.ShakeUntil = now + config.Camera.ShakeMs
}

// SubscribeCameraShake shakes the camera on every landed hit.
func SubscribeCameraShake(w donburi.World) *Subscription {
	return Subscribe(w, components.AttackHit, func(w donburi.World, _ components.AttackHitEvent) {
		TriggerScreenShake(w, config.Camera.ShakeIntensity)
	})
}
