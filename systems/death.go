package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/logger"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// startPlayerDeath makes the player's death terminal: the body stops, the
// camera pans in, and the scene is told to tear down once the delay passes.
func startPlayerDeath(w donburi.World, e *donburi.Entry, source *donburi.Entry, now float64) {
	death := components.Death.Get(e)
	death.Dead = true
	death.DiedAt = now

	components.Physics.Get(e).Enable(false)

	facing := components.Player.Get(e).LastDirection
	setAnimation(e, cfg.AnimDie, facing, now)

	logger.For("player").WithFields(logrus.Fields{
		"character": components.Player.Get(e).CharacterID,
		"at":        now,
	}).Info("player died")

	components.PlayerDied.Publish(w, components.PlayerDiedEvent{Player: e, Source: source})

	panCameraTo(w, e)

	RunAfter(w, cfg.Death.TeardownDelayMs, func(float64) {
		components.DeathSequenceFinished.Publish(w, components.DeathSequenceFinishedEvent{Player: e})
	})
}

// panCameraTo locks the camera and tweens it onto the actor.
func panCameraTo(w donburi.World, e *donburi.Entry) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	obj := components.Object.Get(e).Object

	dur := float32(cfg.Death.CameraPanMs)
	camera.Locked = true
	camera.PanX = gween.New(float32(camera.Position.X), float32(obj.X+obj.W/2), dur, ease.OutQuad)
	camera.PanY = gween.New(float32(camera.Position.Y), float32(obj.Y+obj.H/2), dur, ease.OutQuad)
	camera.PanZ = gween.New(float32(camera.Zoom), float32(cfg.Death.CameraZoom), dur, ease.OutQuad)
}
