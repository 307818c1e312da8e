package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ApplyDrag decays a velocity toward zero with drag in px/s² over dtMs.
func ApplyDrag(velocity, drag, dtMs float64) float64 {
	if drag <= 0 {
		return velocity
	}
	return ApplyFriction(velocity, drag*dtMs/1000)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// Lerp interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MaxFlipThreshold is the distance a chased target must cover before a
// chaser with zero snapiness turns around.
const MaxFlipThreshold = 96.0

// FlipThreshold shrinks linearly from MaxFlipThreshold at snapiness 0 to 0
// at snapiness 1.
func FlipThreshold(snapiness float64) float64 {
	return Lerp(MaxFlipThreshold, 0, Clamp(snapiness, 0, 1))
}

// KnockbackVelocity converts a displacement over durationMs into the
// velocity that covers it. A non-positive duration yields zero.
func KnockbackVelocity(distance, durationMs float64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return distance / (durationMs / 1000)
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports strict overlap. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
