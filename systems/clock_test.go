package systems

import (
	"testing"

	"github.com/automoto/seekthescounge/components"
	"github.com/automoto/seekthescounge/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestClockIsMonotonic(t *testing.T) {
	w := newTestWorld(t)

	AdvanceClock(w, 16)
	AdvanceClock(w, -5)
	AdvanceClock(w, 4)

	assert.Equal(t, 20.0, Now(w))
	assert.Equal(t, 4.0, Delta(w))
}

func TestRunAfterUsesFrameClock(t *testing.T) {
	w := newTestWorld(t)
	var firedAt []float64

	step(w, 30)
	// Scheduled before the queue has seen this frame.
	AdvanceClock(w, 10)
	RunAfter(w, 50, func(now float64) { firedAt = append(firedAt, now) })
	UpdateScheduler(w)

	step(w, 40)
	assert.Empty(t, firedAt)

	step(w, 10)
	assert.Equal(t, []float64{90}, firedAt)
}

func TestScheduleForReplacesSlot(t *testing.T) {
	w := newTestWorld(t)
	target := factory.CreateDummy(w, 100, 160)
	var fired []string

	ScheduleFor(w, target, "slot", 50, func(float64) { fired = append(fired, "first") })
	ScheduleFor(w, target, "slot", 80, func(float64) { fired = append(fired, "second") })
	at, ok := PendingFor(w, target, "slot")
	assert.True(t, ok)
	assert.Equal(t, 80.0, at)

	step(w, 100)
	assert.Equal(t, []string{"second"}, fired)

	ScheduleFor(w, target, "slot", 150, func(float64) { fired = append(fired, "third") })
	CancelFor(w, target, "slot")
	step(w, 100)
	assert.Equal(t, []string{"second"}, fired)
}

func TestClosedSubscriptionDropsEvents(t *testing.T) {
	w := newTestWorld(t)
	var subs Subscriptions
	calls := 0
	subs.Add(Subscribe(w, components.AttackHit, func(donburi.World, components.AttackHitEvent) {
		calls++
	}))

	components.AttackHit.Publish(w, components.AttackHitEvent{Damage: 1})
	ProcessEvents(w)
	assert.Equal(t, 1, calls)

	subs.Close()
	components.AttackHit.Publish(w, components.AttackHitEvent{Damage: 1})
	ProcessEvents(w)
	assert.Equal(t, 1, calls)
	assert.Empty(t, subs)
}

func TestHUDAndShakeFollowHits(t *testing.T) {
	w := newTestWorld(t)
	SubscribeHUD(w)
	SubscribeCameraShake(w)

	step(w, frameMs)
	components.AttackHit.Publish(w, components.AttackHitEvent{Damage: 3})
	ProcessEvents(w)

	hud := components.HUD.Get(components.HUD.MustFirst(w))
	assert.Equal(t, 1, hud.Hits)
	assert.Equal(t, 3, hud.LastDamage)

	camera := components.Camera.Get(components.Camera.MustFirst(w))
	assert.Greater(t, camera.ShakeUntil, Now(w))

	UpdateCamera(w)
	assert.NotZero(t, camera.Offset.X)
}
