package systems

import (
	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.Physics, components.Object))

// UpdatePhysics integrates gravity and drag, moves every enabled body through
// the collision space and refreshes its contact flags.
func UpdatePhysics(w donburi.World) {
	dt := Delta(w)
	bounds := levelBounds(w)

	bodyQuery.Each(w, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		syncBodySize(body, obj)

		if body.Enabled {
			integrate(body, dt)
			moveBody(body, obj, dt, bounds)
		}

		body.WasTouching = body.Touching
		body.Blocked, body.Touching = probeContacts(obj, bounds)
	})
}

func integrate(body *components.PhysicsData, dtMs float64) {
	if body.AllowGravity {
		body.Velocity.Y += cfg.Physics.Gravity * dtMs / 1000
		body.Velocity.Y = min(body.Velocity.Y, cfg.Physics.MaxFallSpeed)
	}
	body.Velocity.X = gamemath.ApplyDrag(body.Velocity.X, body.DragX, dtMs)
}
