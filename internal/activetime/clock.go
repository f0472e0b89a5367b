// Package activetime attributes time to a question only while the
// learner's view is in the foreground. In the terminal that means
// focus reporting; the original platform used tab visibility.
package activetime

// ActivityClock reports whether the learner's view is currently in the
// foreground and notifies subscribers when that changes. Production
// code drives it from terminal focus events; tests flip it by hand.
type ActivityClock interface {
	IsActive() bool
	OnChange(func(active bool))
}

// FocusClock is an ActivityClock fed by focus/blur events.
type FocusClock struct {
	active    bool
	listeners []func(bool)
}

// NewFocusClock returns a clock that starts in the foreground, matching
// a freshly focused terminal.
func NewFocusClock() *FocusClock {
	return &FocusClock{active: true}
}

func (c *FocusClock) IsActive() bool { return c.active }

// OnChange registers a listener invoked on every activity transition.
func (c *FocusClock) OnChange(fn func(active bool)) {
	c.listeners = append(c.listeners, fn)
}

// SetActive records a focus change. Redundant transitions (focused
// while already focused) are dropped so listeners see edges only.
func (c *FocusClock) SetActive(active bool) {
	if c.active == active {
		return
	}
	c.active = active
	for _, fn := range c.listeners {
		fn(active)
	}
}
