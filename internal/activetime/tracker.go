package activetime

import "time"

// Tracker accumulates the active time spent on the current question.
// It holds flushed time plus an open segment that is only counted
// while the view is in the foreground. All methods take the current
// time explicitly, which keeps the tracker deterministic under test.
type Tracker struct {
	accumulated  time.Duration
	segmentStart time.Time
	active       bool
}

// NewTracker starts tracking a question at now, in the active state.
func NewTracker(now time.Time) *Tracker {
	return &Tracker{segmentStart: now, active: true}
}

// Suspend flushes the open segment into the accumulator and stops
// counting. No-op when already suspended.
func (t *Tracker) Suspend(now time.Time) {
	if !t.active {
		return
	}
	t.accumulated += now.Sub(t.segmentStart)
	t.active = false
}

// Resume reopens a segment at now. No-op when already active.
func (t *Tracker) Resume(now time.Time) {
	if t.active {
		return
	}
	t.segmentStart = now
	t.active = true
}

// Reset clears the accumulator for a new question, keeping the current
// activity state. Called on every question index change.
func (t *Tracker) Reset(now time.Time) {
	t.accumulated = 0
	t.segmentStart = now
}

// Active reports whether time is currently being attributed.
func (t *Tracker) Active() bool { return t.active }

// Elapsed returns the active time so far: the accumulator plus the
// open segment if the view is in the foreground.
func (t *Tracker) Elapsed(now time.Time) time.Duration {
	d := t.accumulated
	if t.active {
		d += now.Sub(t.segmentStart)
	}
	if d < 0 {
		return 0
	}
	return d
}

// Seconds returns Elapsed floored to whole seconds, clamped to >= 0.
// This is the value logged as time_spent_seconds.
func (t *Tracker) Seconds(now time.Time) int {
	return int(t.Elapsed(now) / time.Second)
}
