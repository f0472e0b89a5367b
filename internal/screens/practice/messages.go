package practice

import (
	"time"

	engine "github.com/mathsala/mathsala/internal/practice"
)

// tickMsg is sent every second to refresh the elapsed timer.
type tickMsg time.Time

// beginDoneMsg is sent when the session create call finished.
type beginDoneMsg struct {
	Err error
}

// attemptRecordedMsg is sent when an attempt finished recording.
type attemptRecordedMsg struct {
	Err error
}

// finalizedMsg is sent when the run has been scored and closed.
type finalizedMsg struct {
	Outcome engine.Outcome
	Err     error
}

// retryDoneMsg is sent when the retry reset finished.
type retryDoneMsg struct {
	Err error
}
