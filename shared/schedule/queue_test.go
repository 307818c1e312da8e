package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceFiresInTimeThenInsertionOrder(t *testing.T) {
	q := NewQueue()
	var fired []string
	q.RunAfter(50, func(float64) { fired = append(fired, "b") })
	q.RunAfter(10, func(float64) { fired = append(fired, "a") })
	q.RunAfter(50, func(float64) { fired = append(fired, "c") })

	q.Advance(49)
	assert.Equal(t, []string{"a"}, fired)

	q.Advance(50)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Zero(t, q.Len())
}

func TestScheduleSupersedesSameKey(t *testing.T) {
	q := NewQueue()
	key := Key{Target: 7, Slot: "knockback-x"}
	var firedAt []float64

	q.Schedule(key, 150, func(now float64) { firedAt = append(firedAt, now) })
	q.Advance(100)
	q.Schedule(key, 250, func(now float64) { firedAt = append(firedAt, now) })

	at, ok := q.Pending(key)
	require.True(t, ok)
	assert.Equal(t, 250.0, at)

	q.Advance(200)
	assert.Empty(t, firedAt)

	q.Advance(260)
	assert.Equal(t, []float64{260}, firedAt)

	_, ok = q.Pending(key)
	assert.False(t, ok)
}

func TestKeysAreIndependent(t *testing.T) {
	q := NewQueue()
	count := 0
	q.Schedule(Key{Target: 1, Slot: "x"}, 10, func(float64) { count++ })
	q.Schedule(Key{Target: 1, Slot: "y"}, 10, func(float64) { count++ })
	q.Schedule(Key{Target: 2, Slot: "x"}, 10, func(float64) { count++ })

	q.Advance(10)
	assert.Equal(t, 3, count)
}

func TestCancel(t *testing.T) {
	q := NewQueue()
	key := Key{Target: 1, Slot: "flash"}
	fired := false
	q.Schedule(key, 10, func(float64) { fired = true })

	assert.True(t, q.Cancel(key))
	assert.False(t, q.Cancel(key))
	q.Advance(100)
	assert.False(t, fired)
}

func TestActionCanScheduleDueWork(t *testing.T) {
	q := NewQueue()
	var order []int
	q.RunAfter(5, func(now float64) {
		order = append(order, 1)
		q.RunAfter(0, func(float64) { order = append(order, 2) })
	})

	q.Advance(5)
	assert.Equal(t, []int{1, 2}, order)
}

func TestClear(t *testing.T) {
	q := NewQueue()
	q.Schedule(Key{Target: 1, Slot: "a"}, 1, func(float64) { t.Fatal("cleared action ran") })
	q.RunAfter(1, func(float64) { t.Fatal("cleared action ran") })

	q.Clear()
	q.Advance(10)
	assert.Zero(t, q.Len())
}
