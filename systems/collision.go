package systems

import (
	"math"

	"github.com/automoto/seekthescounge/components"
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/automoto/seekthescounge/shared/gamemath"
	"github.com/automoto/seekthescounge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// maxStep keeps each sub-move under half a cell so fast bodies cannot skip
// over a tile.
const maxStep = 8.0

// worldBounds is the playable area. A zero value means unbounded.
type worldBounds struct {
	w, h float64
}

func levelBounds(w donburi.World) worldBounds {
	if entry, ok := components.Level.First(w); ok {
		if level := components.Level.Get(entry).CurrentLevel; level != nil {
			return worldBounds{w: float64(level.Width), h: float64(level.Height)}
		}
	}
	return worldBounds{}
}

func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// OverlapQuery returns the objects carrying any of the tags that overlap obj
// at its current position. The space check is cell-level, so candidates are
// filtered by their boxes.
func OverlapQuery(obj *resolv.Object, tagNames ...string) []*resolv.Object {
	return overlapsAt(obj, 0, 0, tagNames...)
}

func overlapsAt(obj *resolv.Object, dx, dy float64, tagNames ...string) []*resolv.Object {
	if obj.Space == nil {
		return nil
	}
	box := rectOf(obj)
	box.X += dx
	box.Y += dy

	// A cell check stops one pixel short of the far edges, so a second check
	// shifted by a pixel covers bodies resting on fractional positions.
	var hits []*resolv.Object
	seen := map[*resolv.Object]bool{obj: true}
	for _, shift := range [2]float64{0, 1} {
		check := obj.Check(dx+shift, dy+shift, tagNames...)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			if seen[o] {
				continue
			}
			seen[o] = true
			if box.Overlaps(rectOf(o)) {
				hits = append(hits, o)
			}
		}
	}
	return hits
}

// syncBodySize applies SetSize to the collision object, keeping the bottom
// center fixed.
func syncBodySize(body *components.PhysicsData, obj *resolv.Object) {
	if body.Width <= 0 || body.Height <= 0 {
		return
	}
	if obj.W == body.Width && obj.H == body.Height {
		return
	}
	cx := obj.X + obj.W/2
	bottom := obj.Y + obj.H
	obj.W, obj.H = body.Width, body.Height
	obj.X = cx - obj.W/2
	obj.Y = bottom - obj.H
	obj.Update()
}

func moveBody(body *components.PhysicsData, obj *resolv.Object, dtMs float64, bounds worldBounds) {
	dx := body.Velocity.X * dtMs / 1000
	dy := body.Velocity.Y * dtMs / 1000

	if _, blocked := moveAxis(obj, dx, 0, bounds); blocked {
		body.Velocity.X = 0
	}
	if _, blocked := moveAxis(obj, 0, dy, bounds); blocked {
		body.Velocity.Y = 0
	}
	obj.Update()
}

// moveAxis moves obj along one axis in sub-steps and stops flush against the
// first solid or world edge. It returns the distance covered and whether the
// move was cut short.
func moveAxis(obj *resolv.Object, dx, dy float64, bounds worldBounds) (float64, bool) {
	total := math.Abs(dx) + math.Abs(dy)
	if total == 0 {
		return 0, false
	}
	steps := int(math.Ceil(total / maxStep))
	stepX, stepY := dx/float64(steps), dy/float64(steps)

	moved := 0.0
	for i := 0; i < steps; i++ {
		allowedX, allowedY := clampToSolids(obj, stepX, stepY)
		allowedX, allowedY = clampToBounds(obj, allowedX, allowedY, bounds)

		obj.X += allowedX
		obj.Y += allowedY
		obj.Update()
		moved += math.Abs(allowedX) + math.Abs(allowedY)

		if allowedX != stepX || allowedY != stepY {
			return moved, true
		}
	}
	return moved, false
}

func clampToSolids(obj *resolv.Object, dx, dy float64) (float64, float64) {
	solids := overlapsAt(obj, dx, dy, tags.ResolvSolid)
	if len(solids) == 0 {
		return dx, dy
	}

	for _, s := range solids {
		switch {
		case dx > 0:
			dx = min(dx, max(s.X-(obj.X+obj.W), 0))
		case dx < 0:
			dx = max(dx, min(s.X+s.W-obj.X, 0))
		case dy > 0:
			dy = min(dy, max(s.Y-(obj.Y+obj.H), 0))
		case dy < 0:
			dy = max(dy, min(s.Y+s.H-obj.Y, 0))
		}
	}
	return dx, dy
}

func clampToBounds(obj *resolv.Object, dx, dy float64, bounds worldBounds) (float64, float64) {
	if bounds.w > 0 {
		if obj.X+dx < 0 {
			dx = -obj.X
		}
		if obj.X+obj.W+dx > bounds.w {
			dx = bounds.w - obj.X - obj.W
		}
	}
	if bounds.h > 0 {
		if obj.Y+dy < 0 {
			dy = -obj.Y
		}
		if obj.Y+obj.H+dy > bounds.h {
			dy = bounds.h - obj.Y - obj.H
		}
	}
	return dx, dy
}

// probeContacts tests one probe distance around the body. Blocked means a
// solid tile or world edge, touching means another character body.
func probeContacts(obj *resolv.Object, bounds worldBounds) (blocked, touching components.Contacts) {
	p := cfg.Physics.ContactProbe
	blocked = components.Contacts{
		Left:  len(overlapsAt(obj, -p, 0, tags.ResolvSolid)) > 0,
		Right: len(overlapsAt(obj, p, 0, tags.ResolvSolid)) > 0,
		Up:    len(overlapsAt(obj, 0, -p, tags.ResolvSolid)) > 0,
		Down:  len(overlapsAt(obj, 0, p, tags.ResolvSolid)) > 0,
	}
	if bounds.w > 0 {
		blocked.Left = blocked.Left || obj.X <= 0
		blocked.Right = blocked.Right || obj.X+obj.W >= bounds.w
	}
	if bounds.h > 0 {
		blocked.Down = blocked.Down || obj.Y+obj.H >= bounds.h
	}

	if obj.HasTags(tags.ResolvCharacter) {
		touching = components.Contacts{
			Left:  touchesLive(overlapsAt(obj, -p, 0, tags.ResolvCharacter)),
			Right: touchesLive(overlapsAt(obj, p, 0, tags.ResolvCharacter)),
			Up:    touchesLive(overlapsAt(obj, 0, -p, tags.ResolvCharacter)),
			Down:  touchesLive(overlapsAt(obj, 0, p, tags.ResolvCharacter)),
		}
	}
	return blocked, touching
}

// touchesLive ignores corpses waiting to despawn.
func touchesLive(objs []*resolv.Object) bool {
	for _, o := range objs {
		if entry, ok := o.Data.(*donburi.Entry); ok && IsDead(entry) {
			continue
		}
		return true
	}
	return false
}
