// Package schedule is a deferred-action queue driven by a caller-supplied
// clock. Actions are keyed by (target, slot); scheduling a key that is
// already pending replaces the earlier action, which then never runs.
package schedule

import "slices"

// Key identifies a cancellable slot. Target is usually an entity id.
type Key struct {
	Target uint64
	Slot   string
}

type action struct {
	at    float64
	seq   uint64
	key   Key
	keyed bool
	fn    func(now float64)
}

// Queue holds pending actions. It is not safe for concurrent use; the game
// loop owns it.
type Queue struct {
	pending []*action
	byKey   map[Key]*action
	seq     uint64
	now     float64
}

func NewQueue() *Queue {
	return &Queue{byKey: make(map[Key]*action)}
}

// Now returns the clock value of the last Advance.
func (q *Queue) Now() float64 {
	return q.now
}

// Schedule runs fn at the absolute time at, replacing any pending action
// with the same key.
func (q *Queue) Schedule(key Key, at float64, fn func(now float64)) {
	q.Cancel(key)
	a := q.push(at, fn)
	a.key = key
	a.keyed = true
	q.byKey[key] = a
}

// RunAfter runs fn delay ms after the last Advance. It cannot be cancelled.
func (q *Queue) RunAfter(delay float64, fn func(now float64)) {
	q.push(q.now+max(delay, 0), fn)
}

// Cancel drops the pending action for key, if any.
func (q *Queue) Cancel(key Key) bool {
	a, ok := q.byKey[key]
	if !ok {
		return false
	}
	delete(q.byKey, key)
	q.pending = slices.DeleteFunc(q.pending, func(p *action) bool { return p == a })
	return true
}

// Pending reports whether key has an action waiting and when it fires.
func (q *Queue) Pending(key Key) (float64, bool) {
	a, ok := q.byKey[key]
	if !ok {
		return 0, false
	}
	return a.at, true
}

// Len returns the number of waiting actions.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Advance moves the clock to now and fires every action due at or before it
// in (time, insertion) order. Actions scheduled by a firing action run in the
// same call if they are already due.
func (q *Queue) Advance(now float64) {
	q.now = now
	for len(q.pending) > 0 {
		next := q.pending[0]
		if next.at > now {
			return
		}
		q.pending = q.pending[1:]
		if next.keyed {
			delete(q.byKey, next.key)
		}
		next.fn(now)
	}
}

// Clear drops everything without running it.
func (q *Queue) Clear() {
	q.pending = nil
	clear(q.byKey)
}

func (q *Queue) push(at float64, fn func(now float64)) *action {
	q.seq++
	a := &action{at: at, seq: q.seq, fn: fn}
	i, _ := slices.BinarySearchFunc(q.pending, a, func(p, t *action) int {
		switch {
		case p.at < t.at:
			return -1
		case p.at > t.at:
			return 1
		case p.seq < t.seq:
			return -1
		case p.seq > t.seq:
			return 1
		}
		return 0
	})
	q.pending = slices.Insert(q.pending, i, a)
	return a
}
