package factory

import (
	"github.com/automoto/seekthescounge/archetypes"
	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/shared/schedule"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Zoom: 1})
	return camera
}

// CreateClock creates the frame clock and its deferred-action queue.
func CreateClock(w donburi.World) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Scheduler.SetValue(clock, components.SchedulerData{Queue: schedule.NewQueue()})
	return clock
}

func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}

func CreateHUD(w donburi.World) *donburi.Entry {
	return archetypes.HUD.Spawn(w)
}
