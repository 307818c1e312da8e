package systems

import (
	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/shared/schedule"
	"github.com/yohamta/donburi"
)

// AdvanceClock moves the frame clock forward by deltaMs. Negative deltas are
// treated as zero so the clock stays monotonic.
func AdvanceClock(w donburi.World, deltaMs float64) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	deltaMs = max(deltaMs, 0)
	clock.Delta = deltaMs
	clock.Now += deltaMs
	clock.Frame++
}

// Now returns the frame clock in ms, or zero when the world has no clock.
func Now(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Now
	}
	return 0
}

// Delta returns the length of the current frame in ms.
func Delta(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Delta
	}
	return 0
}

func queueOf(w donburi.World) *schedule.Queue {
	if entry, ok := components.Clock.First(w); ok {
		return components.Scheduler.Get(entry).Queue
	}
	return nil
}

// UpdateScheduler fires every deferred action that is due.
func UpdateScheduler(w donburi.World) {
	if q := queueOf(w); q != nil {
		q.Advance(Now(w))
	}
}

// RunAfter runs fn delayMs from now.
func RunAfter(w donburi.World, delayMs float64, fn func(now float64)) {
	q := queueOf(w)
	if q == nil {
		return
	}
	q.RunAfter(Now(w)+delayMs-q.Now(), fn)
}

// ScheduleFor runs fn at the absolute time at in the slot of target,
// replacing whatever that slot held.
func ScheduleFor(w donburi.World, target *donburi.Entry, slot string, at float64, fn func(now float64)) {
	q := queueOf(w)
	if q == nil {
		return
	}
	q.Schedule(slotKey(target, slot), at, fn)
}

// CancelFor drops the pending action in the slot of target.
func CancelFor(w donburi.World, target *donburi.Entry, slot string) {
	if q := queueOf(w); q != nil {
		q.Cancel(slotKey(target, slot))
	}
}

// PendingFor reports when the slot of target fires, if it is scheduled.
func PendingFor(w donburi.World, target *donburi.Entry, slot string) (float64, bool) {
	if q := queueOf(w); q != nil {
		return q.Pending(slotKey(target, slot))
	}
	return 0, false
}

func slotKey(target *donburi.Entry, slot string) schedule.Key {
	return schedule.Key{Target: uint64(target.Entity()), Slot: slot}
}
