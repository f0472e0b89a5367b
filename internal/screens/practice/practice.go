package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathsala/mathsala/internal/activetime"
	engine "github.com/mathsala/mathsala/internal/practice"
	"github.com/mathsala/mathsala/internal/quiz"
	"github.com/mathsala/mathsala/internal/screen"
	"github.com/mathsala/mathsala/internal/topic"
	"github.com/mathsala/mathsala/internal/ui/components"
	"github.com/mathsala/mathsala/internal/ui/layout"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseReview
	phaseFinalizing
	phaseResults
)

// Screen runs one topic's question sequence: answering, skipping,
// back-and-forth navigation, the pre-submit review pass, and the
// results view with the retry affordance.
type Screen struct {
	run   *engine.Run
	topic topic.Topic

	index int
	q     *quiz.QuestionSpec
	sel   engine.Selection

	input      components.TextInput
	mcSelected int

	clock     *activetime.FocusClock
	tracker   *activetime.Tracker
	startTime time.Time
	elapsed   int

	phase          phase
	reviewCursor   int
	outstanding    []int
	returnToReview bool
	outcome        engine.Outcome

	beginDone      bool
	pendingRecords []tea.Cmd

	errMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New builds the screen and deals the question sequence for t.
func New(t topic.Topic, cfg engine.Config) *Screen {
	s := &Screen{
		topic:   t,
		clock:   activetime.NewFocusClock(),
		input:   components.NewTextInput("Type your answer...", false, 30),
		tracker: activetime.NewTracker(time.Now()),
	}
	s.clock.OnChange(func(active bool) {
		now := time.Now()
		if active {
			s.tracker.Resume(now)
		} else {
			s.tracker.Suspend(now)
		}
	})

	run, err := engine.NewRun(t, cfg)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.run = run

	if q, err := run.Question(0); err != nil {
		s.errMsg = err.Error()
	} else {
		s.q = q
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	if s.run == nil {
		return nil
	}
	s.startTime = time.Now()
	run := s.run
	return tea.Batch(
		func() tea.Msg {
			return beginDoneMsg{Err: run.Begin(context.Background())}
		},
		tickCmd(),
		s.input.Init(),
	)
}

func (s *Screen) Title() string {
	return s.topic.Name
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseReview:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Revisit"},
			{Key: "A", Description: "Submit anyway"},
		}
	case phaseResults:
		if s.outcome.Passed {
			return []layout.KeyHint{
				{Key: "Esc", Description: "Back to topics"},
			}
		}
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Back to topics"},
		}
	case phaseFinalizing:
		return nil
	}

	if s.locked() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "←", Description: "Previous"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+S", Description: "Skip"},
		{Key: "Tab", Description: "Next"},
	}
	if s.index > 0 {
		hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Previous"})
	}
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.FocusMsg:
		s.clock.SetActive(true)
		return s, nil

	case tea.BlurMsg:
		s.clock.SetActive(false)
		return s, nil

	case tickMsg:
		if s.phase == phaseFinalizing || s.phase == phaseResults {
			return s, nil
		}
		s.elapsed = int(time.Since(s.startTime).Seconds())
		return s, tickCmd()

	case beginDoneMsg:
		// Session create is best-effort; the run continues either way.
		// Attempt logs held back until now go out behind it.
		s.beginDone = true
		pending := s.pendingRecords
		s.pendingRecords = nil
		return s, tea.Batch(pending...)

	case attemptRecordedMsg:
		// Best-effort as well; failures are already mirrored locally.
		return s, nil

	case finalizedMsg:
		s.outcome = msg.Outcome
		s.phase = phaseResults
		return s, nil

	case retryDoneMsg:
		s.resetForRetry()
		return s, tea.Batch(tickCmd(), s.input.Init())

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && !s.locked() && s.q != nil && s.q.Kind == quiz.KindFreeText {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" || s.run == nil {
		return s, nil
	}

	switch s.phase {
	case phaseReview:
		return s.handleReviewKey(msg)
	case phaseResults:
		return s.handleResultsKey(msg)
	case phaseFinalizing:
		return s, nil
	}
	return s.handleQuestionKey(msg)
}

// locked reports whether input at the current index is closed. Graded
// answers are immutable; a committed skip stays open so the question
// can still be answered on a later visit.
func (s *Screen) locked() bool {
	return s.sel.Submitted && !s.sel.Skipped
}

func (s *Screen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.locked() {
		switch key {
		case "enter", "right", "tab":
			return s.advance()
		case "left", "shift+tab":
			return s.previous()
		}
		return s, nil
	}

	switch key {
	case "enter":
		return s.check()
	case "ctrl+s":
		return s.skip()
	case "tab":
		return s.advance()
	case "shift+tab":
		return s.previous()
	}

	if s.q != nil && s.q.Kind == quiz.KindMultipleChoice {
		switch key {
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
			return s, nil
		case "down", "j":
			if s.mcSelected < len(s.q.Options)-1 {
				s.mcSelected++
			}
			return s, nil
		case "s":
			return s.skip()
		case "1", "2", "3", "4":
			n := int(key[0] - '1')
			if n < len(s.q.Options) {
				s.mcSelected = n
				return s.check()
			}
			return s, nil
		}
		return s, nil
	}

	// Free text: everything else goes to the input.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleReviewKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.reviewCursor > 0 {
			s.reviewCursor--
		}
	case "down", "j":
		if s.reviewCursor < len(s.outstanding)-1 {
			s.reviewCursor++
		}
	case "enter":
		if len(s.outstanding) > 0 {
			s.returnToReview = true
			s.phase = phaseQuestion
			s.goTo(s.outstanding[s.reviewCursor])
		}
	case "a":
		return s.submitAnyway()
	}
	return s, nil
}

func (s *Screen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "r" && !s.outcome.Passed {
		run := s.run
		return s, func() tea.Msg {
			return retryDoneMsg{Err: run.Restart(context.Background())}
		}
	}
	return s, nil
}

// check grades the current selection or typed answer.
func (s *Screen) check() (screen.Screen, tea.Cmd) {
	if s.q == nil {
		return s, nil
	}

	var value string
	if s.q.Kind == quiz.KindMultipleChoice {
		if s.mcSelected < 0 || s.mcSelected >= len(s.q.Options) {
			return s, nil
		}
		value = s.q.Options[s.mcSelected]
	} else {
		value = s.input.Value()
		if value == "" {
			return s, nil
		}
	}

	seconds := s.tracker.Seconds(time.Now())
	rec, committed := s.run.CommitAnswer(s.index, s.q, value, seconds)
	s.sel = engine.HydrateSelection(s.run.Answers, s.index)
	if s.q.Kind == quiz.KindFreeText {
		s.input.Submit(rec.IsCorrect)
	}
	if !committed {
		return s, nil
	}
	return s, s.recordCmd(s.index, s.q, rec)
}

// skip commits a skip for the current question and moves on.
func (s *Screen) skip() (screen.Screen, tea.Cmd) {
	if s.q == nil {
		return s, nil
	}

	seconds := s.tracker.Seconds(time.Now())
	rec, committed := s.run.CommitSkip(s.index, seconds)
	s.sel = engine.HydrateSelection(s.run.Answers, s.index)
	if !committed {
		// Already skipped on an earlier visit; just move on.
		return s.advance()
	}

	recordCmd := s.recordCmd(s.index, s.q, rec)
	next, advanceCmd := s.advance()
	return next, tea.Batch(recordCmd, advanceCmd)
}

// recordCmd builds the attempt-log command. Until the session create
// has resolved, commands are held back so the create always reaches
// the backend before the first log.
func (s *Screen) recordCmd(index int, q *quiz.QuestionSpec, rec engine.AnswerRecord) tea.Cmd {
	run := s.run
	cmd := func() tea.Msg {
		return attemptRecordedMsg{Err: run.Record(context.Background(), index, q, rec)}
	}
	if !s.beginDone {
		s.pendingRecords = append(s.pendingRecords, cmd)
		return nil
	}
	return cmd
}

// advance moves forward: to the review pass when jumped back from it,
// to the next question, or into finalization at the end of the
// sequence.
func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	if s.returnToReview {
		s.returnToReview = false
		return s.enterReviewOrFinalize()
	}
	if s.index+1 < s.run.Supply.Count() {
		s.goTo(s.index + 1)
		return s, s.input.Init()
	}
	return s.enterReviewOrFinalize()
}

func (s *Screen) previous() (screen.Screen, tea.Cmd) {
	if s.index > 0 {
		s.goTo(s.index - 1)
		return s, s.input.Init()
	}
	return s, nil
}

// goTo repositions on index and rebuilds the transient view state from
// the committed record, so revisiting a question reproduces it exactly.
func (s *Screen) goTo(index int) {
	s.index = index
	s.tracker.Reset(time.Now())
	s.sel = engine.HydrateSelection(s.run.Answers, index)

	q, err := s.run.Question(index)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.q = q

	s.mcSelected = 0
	if q.Kind == quiz.KindMultipleChoice && s.sel.Submitted {
		for i, opt := range q.Options {
			if opt == s.sel.Value {
				s.mcSelected = i
				break
			}
		}
	}

	s.input = components.NewTextInput("Type your answer...", false, 30)
	if q.Kind == quiz.KindFreeText && s.sel.Submitted && !s.sel.Skipped {
		s.input.Model.SetValue(s.sel.Value)
		s.input.Submit(s.sel.Correct)
	}
}

// enterReviewOrFinalize shows the review pass when questions are still
// unanswered or skipped, otherwise submits the run.
func (s *Screen) enterReviewOrFinalize() (screen.Screen, tea.Cmd) {
	s.outstanding = s.run.Outstanding()
	if len(s.outstanding) == 0 {
		return s.finalize(nil)
	}
	s.phase = phaseReview
	s.reviewCursor = 0
	return s, nil
}

// submitAnyway forces every untouched question to a zero-time skip and
// submits the run.
func (s *Screen) submitAnyway() (screen.Screen, tea.Cmd) {
	type forced struct {
		index int
		q     *quiz.QuestionSpec
		rec   engine.AnswerRecord
	}

	var toRecord []forced
	for _, i := range s.run.ForceSkipRemaining() {
		q, err := s.run.Question(i)
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		rec, _ := s.run.Answers.Get(i)
		toRecord = append(toRecord, forced{index: i, q: q, rec: rec})
	}

	run := s.run
	return s.finalize(func(ctx context.Context) {
		for _, f := range toRecord {
			_ = run.Record(ctx, f.index, f.q, f.rec)
		}
	})
}

// finalize scores and closes the run in a command goroutine. pre, when
// set, runs first (recording forced skips).
func (s *Screen) finalize(pre func(context.Context)) (screen.Screen, tea.Cmd) {
	s.phase = phaseFinalizing
	run := s.run
	elapsed := int(time.Since(s.startTime).Seconds())
	return s, func() tea.Msg {
		ctx := context.Background()
		if pre != nil {
			pre(ctx)
		}
		outcome, err := run.Finalize(ctx, elapsed)
		return finalizedMsg{Outcome: outcome, Err: err}
	}
}

// resetForRetry returns the screen to question zero after Restart has
// dealt a fresh sequence.
func (s *Screen) resetForRetry() {
	now := time.Now()
	s.phase = phaseQuestion
	s.index = 0
	s.sel = engine.Selection{}
	s.outstanding = nil
	s.reviewCursor = 0
	s.returnToReview = false
	s.outcome = engine.Outcome{}
	s.pendingRecords = nil
	s.startTime = now
	s.elapsed = 0
	s.tracker.Reset(now)
	s.mcSelected = 0
	s.input = components.NewTextInput("Type your answer...", false, 30)

	if q, err := s.run.Question(0); err != nil {
		s.errMsg = err.Error()
	} else {
		s.q = q
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
