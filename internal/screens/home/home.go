// Package home shows the topic picker: every registered practice
// topic grouped by grade, with a completion badge for topics whose
// mastery threshold has been met.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathsala/mathsala/internal/backend"
	engine "github.com/mathsala/mathsala/internal/practice"
	"github.com/mathsala/mathsala/internal/router"
	"github.com/mathsala/mathsala/internal/screen"
	practicescreen "github.com/mathsala/mathsala/internal/screens/practice"
	"github.com/mathsala/mathsala/internal/store"
	"github.com/mathsala/mathsala/internal/topic"
	"github.com/mathsala/mathsala/internal/ui/components"
	"github.com/mathsala/mathsala/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	menu           components.Menu
	topics         []topic.Topic
	completedCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the topic picker. Completion flags are read once here;
// finishing a run and coming back re-enters through a fresh picker.
func New(client backend.Client, events store.EventRepo, progress store.ProgressRepo, learnerID int) *HomeScreen {
	topics, err := topic.All()
	if err != nil {
		topics = nil
	}

	completed := make(map[string]bool, len(topics))
	completedCount := 0
	if progress != nil {
		ctx := context.Background()
		for _, t := range topics {
			done, err := progress.Completed(ctx, t.ID)
			if err != nil {
				continue
			}
			completed[t.ID] = done
			if done {
				completedCount++
			}
		}
	}

	cfg := engine.Config{
		Client:    client,
		Events:    events,
		Progress:  progress,
		LearnerID: learnerID,
	}

	items := make([]components.MenuItem, 0, len(topics)+1)
	for _, t := range topics {
		t := t
		badge := " "
		if completed[t.ID] {
			badge = "✓"
		}
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s %-38s %s", badge, t.Name, gradeLabel(t.Grade)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practicescreen.New(t, cfg)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "  EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:           components.NewMenu(items),
		topics:         topics,
		completedCount: completedCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("MATHSALA"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a topic to practice"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	b.WriteString("\n")

	stats := fmt.Sprintf("%d of %d topics complete", h.completedCount, len(h.topics))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// gradeLabel turns "class-5" into "Class 5".
func gradeLabel(grade string) string {
	parts := strings.SplitN(grade, "-", 2)
	if len(parts) != 2 || parts[0] == "" {
		return grade
	}
	return strings.ToUpper(parts[0][:1]) + parts[0][1:] + " " + parts[1]
}
