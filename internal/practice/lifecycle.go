package practice

import (
	"context"
	"fmt"

	"github.com/mathsala/mathsala/internal/backend"
)

// LifecycleState is the phase of the backend session handle.
type LifecycleState int

const (
	// StateIdle means no session exists. Without a learner identity the
	// lifecycle stays here for the whole run; grading still works.
	StateIdle LifecycleState = iota

	// StateCreating means the create call is in flight.
	StateCreating

	// StateActive spans all question navigation.
	StateActive

	// StateFinishing means the close call is in flight.
	StateFinishing

	// StateClosed is terminal; reached exactly once.
	StateClosed
)

func (s LifecycleState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCreating:
		return "creating"
	case StateActive:
		return "active"
	case StateFinishing:
		return "finishing"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("LifecycleState(%d)", int(s))
}

// Lifecycle opens the backend session handle once per run and closes
// it exactly once. All transitions happen on the UI event loop, so no
// locking is needed.
type Lifecycle struct {
	client    backend.Client
	learnerID int
	state     LifecycleState
	sessionID string
}

// NewLifecycle creates a lifecycle for one run. learnerID == 0 means
// no identity is available: Begin and Finish become no-ops and no
// handle or logs are ever produced.
func NewLifecycle(client backend.Client, learnerID int) *Lifecycle {
	return &Lifecycle{client: client, learnerID: learnerID, state: StateIdle}
}

// Begin opens the session. Guarded so a session is never created twice
// for the same run: calls in any state but Idle are no-ops. A failed
// create leaves the handle empty and the run proceeds without it;
// subsequent attempt logs simply carry no session reference.
func (l *Lifecycle) Begin(ctx context.Context, skillID int) error {
	if l.state != StateIdle || l.learnerID == 0 {
		return nil
	}
	l.state = StateCreating

	id, err := l.client.CreateSession(ctx, l.learnerID, skillID)
	l.state = StateActive
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	l.sessionID = id
	return nil
}

// Finish closes the session exactly once. Only an Active lifecycle has
// anything to close; Idle runs (no learner) and repeated calls are
// no-ops.
func (l *Lifecycle) Finish(ctx context.Context) error {
	if l.state != StateActive {
		return nil
	}
	l.state = StateFinishing
	defer func() { l.state = StateClosed }()

	if l.sessionID == "" {
		return nil
	}
	if err := l.client.FinishSession(ctx, l.sessionID); err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	return nil
}

// State returns the current phase.
func (l *Lifecycle) State() LifecycleState { return l.state }

// SessionID returns the backend handle, or "" when none was obtained.
func (l *Lifecycle) SessionID() string { return l.sessionID }

// LearnerID returns the learner this run belongs to, 0 when anonymous.
func (l *Lifecycle) LearnerID() int { return l.learnerID }
