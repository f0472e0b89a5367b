package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathsala/mathsala/internal/quiz"
	"github.com/mathsala/mathsala/internal/ui/components"
	"github.com/mathsala/mathsala/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	switch s.phase {
	case phaseReview:
		return s.renderReview(width)
	case phaseFinalizing:
		return centerDim(width, "\n\n\n  Submitting your answers...")
	case phaseResults:
		return s.renderResults(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question with its input area and,
// after checking, the inline feedback.
func (s *Screen) renderQuestion(width int) string {
	if s.q == nil {
		return centerDim(width, "\n\n  Preparing questions...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.topic.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s",
			s.index+1,
			s.run.Supply.Count(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.run.Answers.CorrectCount(),
			formatElapsed(s.elapsed),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	total := s.run.Supply.Count()
	bar := components.NewProgressBar("", float64(s.run.Answers.Len())/float64(total), false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(s.q.Prompt))
	b.WriteString("\n\n")

	if s.q.Kind == quiz.KindMultipleChoice {
		b.WriteString(s.renderOptions(width))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	if s.sel.Submitted {
		b.WriteString("\n\n")
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

// renderOptions renders the choice list. Once the answer is locked in,
// the chosen and correct options are colored instead of the cursor
// highlight; a skipped question keeps the live cursor.
func (s *Screen) renderOptions(width int) string {
	locked := s.locked()

	var b strings.Builder
	for i, opt := range s.q.Options {
		prefix := "  "
		if !locked && i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case locked && opt == s.q.Answer:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case locked && opt == s.sel.Value:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case !locked && i == s.mcSelected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if !locked {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("\nSelect (1-4) or use arrows + Enter"))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *Screen) renderFeedback(width int) string {
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	switch {
	case s.sel.Skipped:
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true), "Skipped")
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Answer it now, or come back from the review list.")
	case s.sel.Correct:
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Correct!")
	default:
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
		center(lipgloss.NewStyle().Foreground(theme.TextDim), fmt.Sprintf("Correct answer: %s", s.q.Answer))
	}

	if !s.sel.Skipped && s.q.Explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	return b.String()
}

// renderReview lists every question still unanswered or skipped.
func (s *Screen) renderReview(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Before you submit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d question(s) still need attention", len(s.outstanding))))
	b.WriteString("\n\n")

	var list strings.Builder
	for pos, idx := range s.outstanding {
		label := "unanswered"
		if rec, ok := s.run.Answers.Get(idx); ok && rec.IsSkipped {
			label = "skipped"
		}
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if pos == s.reviewCursor {
			prefix = "> "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		list.WriteString(style.Render(fmt.Sprintf("%sQuestion %d · %s", prefix, idx+1, label)))
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter revisits the question. [A] submits with the rest skipped."))

	return b.String()
}

// renderResults shows the scored outcome and the retry affordance.
func (s *Screen) renderResults(width int) string {
	o := s.outcome

	var b strings.Builder
	b.WriteString("\n\n")

	if o.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Topic complete!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Keep practicing"))
	}
	b.WriteString("\n\n")

	score := fmt.Sprintf("%.0f%%", o.Score*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(score))
	b.WriteString("\n")

	detail := fmt.Sprintf("%d of %d correct", o.Correct, o.Total)
	if o.Skipped > 0 {
		detail += fmt.Sprintf(", %d skipped", o.Skipped)
	}
	detail += "  in " + formatElapsed(o.ElapsedSeconds)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")

	if o.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%s is marked complete. Great work!", s.topic.Name)))
	} else {
		need := int(o.Threshold * 100)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("You need %d%% to complete this topic.", need)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Render("[R] Try again with fresh questions"))
	}

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press Esc to go back.", errMsg))
}

func centerDim(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func formatElapsed(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
