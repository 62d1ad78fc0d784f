package session

import (
	"time"
)

// Timer is the session's single repeating tick schedule. Each start begins a
// new generation; ticks stamped with any other generation, or arriving after
// stop, are stale and must be ignored. That keeps at most one live schedule
// per pet and none once it is dead.
type Timer struct {
	interval   time.Duration
	generation uint64
	active     bool
}

func (t *Timer) start() uint64 {
	t.generation++
	t.active = true
	return t.generation
}

func (t *Timer) stop() {
	t.active = false
}

func (t Timer) Interval() time.Duration { return t.interval }
func (t Timer) Generation() uint64 { return t.generation }
func (t Timer) Active() bool { return t.active }

// Owns reports whether a tick from generation belongs to the running schedule.
func (t Timer) Owns(generation uint64) bool {
	return t.active && generation == t.generation
}
