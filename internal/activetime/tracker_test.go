package activetime

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func at(secs float64) time.Time {
	return t0.Add(time.Duration(secs * float64(time.Second)))
}

func TestTrackerCountsForegroundTime(t *testing.T) {
	tr := NewTracker(t0)
	if got := tr.Seconds(at(7.9)); got != 7 {
		t.Errorf("Seconds = %d, want 7 (floored)", got)
	}
}

func TestTrackerExcludesHiddenTime(t *testing.T) {
	tr := NewTracker(t0)

	// 3 s focused, 5 s hidden, 2 s focused again.
	tr.Suspend(at(3))
	tr.Resume(at(8))
	if got := tr.Seconds(at(10)); got != 5 {
		t.Errorf("Seconds = %d, want 5 (3 + 2, hidden gap excluded)", got)
	}
}

func TestTrackerWhileSuspendedDoesNotGrow(t *testing.T) {
	tr := NewTracker(t0)
	tr.Suspend(at(4))

	if got := tr.Seconds(at(100)); got != 4 {
		t.Errorf("Seconds = %d, want 4 while suspended", got)
	}
	if tr.Active() {
		t.Error("tracker should be inactive after Suspend")
	}
}

func TestTrackerRedundantTransitions(t *testing.T) {
	tr := NewTracker(t0)
	tr.Resume(at(1)) // already active: no-op
	tr.Suspend(at(2))
	tr.Suspend(at(3)) // already suspended: no-op
	if got := tr.Seconds(at(9)); got != 2 {
		t.Errorf("Seconds = %d, want 2", got)
	}
}

func TestTrackerResetStartsFresh(t *testing.T) {
	tr := NewTracker(t0)
	tr.Reset(at(30))
	if got := tr.Seconds(at(33)); got != 3 {
		t.Errorf("Seconds after reset = %d, want 3", got)
	}
}

func TestTrackerNeverNegative(t *testing.T) {
	tr := NewTracker(at(10))
	// A clock that jumps backwards must still clamp at zero.
	if got := tr.Seconds(at(5)); got != 0 {
		t.Errorf("Seconds = %d, want 0 with a backwards clock", got)
	}
}

func TestFocusClockNotifiesOnEdgesOnly(t *testing.T) {
	c := NewFocusClock()
	var events []bool
	c.OnChange(func(active bool) { events = append(events, active) })

	c.SetActive(true) // already active: dropped
	c.SetActive(false)
	c.SetActive(false) // already inactive: dropped
	c.SetActive(true)

	if len(events) != 2 || events[0] != false || events[1] != true {
		t.Errorf("events = %v, want [false true]", events)
	}
	if !c.IsActive() {
		t.Error("clock should be active after final SetActive(true)")
	}
}

func TestFocusClockDrivesTracker(t *testing.T) {
	c := NewFocusClock()
	tr := NewTracker(t0)

	// Wire the clock to the tracker the way the practice screen does,
	// with a scripted notion of now.
	now := t0
	c.OnChange(func(active bool) {
		if active {
			tr.Resume(now)
		} else {
			tr.Suspend(now)
		}
	})

	now = at(3)
	c.SetActive(false)
	now = at(8)
	c.SetActive(true)

	if got := tr.Seconds(at(10)); got != 5 {
		t.Errorf("Seconds = %d, want 5", got)
	}
}
