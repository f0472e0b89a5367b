package practice

import (
	"context"
	"errors"
	"testing"

	"github.com/mathsala/mathsala/internal/backend"
)

// fakeClient records backend calls and fails on demand.
type fakeClient struct {
	sessionID  string
	createErr  error
	finishErr  error
	attemptErr error

	creates  int
	finishes int
	attempts []backend.AttemptLogEntry
	reports  []backend.Report
	finished []string
}

func (f *fakeClient) CreateSession(_ context.Context, learnerID, skillID int) (string, error) {
	f.creates++
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.sessionID, nil
}

func (f *fakeClient) RecordAttempt(_ context.Context, entry backend.AttemptLogEntry) error {
	f.attempts = append(f.attempts, entry)
	return f.attemptErr
}

func (f *fakeClient) FinishSession(_ context.Context, sessionID string) error {
	f.finishes++
	f.finished = append(f.finished, sessionID)
	return f.finishErr
}

func (f *fakeClient) CreateReport(_ context.Context, report backend.Report) error {
	f.reports = append(f.reports, report)
	return nil
}

func TestLifecycleHappyPath(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	lc := NewLifecycle(client, 7)
	ctx := context.Background()

	if lc.State() != StateIdle {
		t.Fatalf("state = %v, want idle", lc.State())
	}

	if err := lc.Begin(ctx, 2001); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if lc.State() != StateActive {
		t.Errorf("state = %v, want active", lc.State())
	}
	if lc.SessionID() != "sess-1" {
		t.Errorf("session id = %q, want sess-1", lc.SessionID())
	}

	if err := lc.Finish(ctx); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if lc.State() != StateClosed {
		t.Errorf("state = %v, want closed", lc.State())
	}
	if client.finishes != 1 {
		t.Errorf("finishes = %d, want 1", client.finishes)
	}
}

func TestLifecycleBeginAtMostOnce(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	lc := NewLifecycle(client, 7)
	ctx := context.Background()

	lc.Begin(ctx, 2001)
	lc.Begin(ctx, 2001)
	lc.Begin(ctx, 2001)

	if client.creates != 1 {
		t.Errorf("creates = %d, want 1", client.creates)
	}
}

func TestLifecycleFinishExactlyOnce(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	lc := NewLifecycle(client, 7)
	ctx := context.Background()

	lc.Begin(ctx, 2001)
	lc.Finish(ctx)
	lc.Finish(ctx)

	if client.finishes != 1 {
		t.Errorf("finishes = %d, want 1", client.finishes)
	}
}

func TestLifecycleAnonymousStaysIdle(t *testing.T) {
	client := &fakeClient{sessionID: "sess-1"}
	lc := NewLifecycle(client, 0)
	ctx := context.Background()

	if err := lc.Begin(ctx, 2001); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if lc.State() != StateIdle {
		t.Errorf("state = %v, want idle without learner", lc.State())
	}
	if client.creates != 0 {
		t.Errorf("creates = %d, want 0", client.creates)
	}

	// Finish is a no-op from idle.
	if err := lc.Finish(ctx); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if client.finishes != 0 {
		t.Errorf("finishes = %d, want 0", client.finishes)
	}
}

func TestLifecycleCreateFailureContinuesWithoutHandle(t *testing.T) {
	client := &fakeClient{createErr: errors.New("backend down")}
	lc := NewLifecycle(client, 7)
	ctx := context.Background()

	if err := lc.Begin(ctx, 2001); err == nil {
		t.Fatal("expected begin error")
	}
	// The run proceeds active with an empty handle.
	if lc.State() != StateActive {
		t.Errorf("state = %v, want active", lc.State())
	}
	if lc.SessionID() != "" {
		t.Errorf("session id = %q, want empty", lc.SessionID())
	}

	// Closing with no handle never calls the backend.
	if err := lc.Finish(ctx); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if client.finishes != 0 {
		t.Errorf("finishes = %d, want 0", client.finishes)
	}
	if lc.State() != StateClosed {
		t.Errorf("state = %v, want closed", lc.State())
	}
}
