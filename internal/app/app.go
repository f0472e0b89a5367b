package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathsala/mathsala/internal/backend"
	"github.com/mathsala/mathsala/internal/router"
	"github.com/mathsala/mathsala/internal/screen"
	"github.com/mathsala/mathsala/internal/screens/home"
	"github.com/mathsala/mathsala/internal/store"
	"github.com/mathsala/mathsala/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	// Client talks to the platform backend. Nil means offline: a
	// no-op client is used and nothing leaves the machine.
	Client backend.Client

	// EventRepo receives the local event mirror.
	EventRepo store.EventRepo

	// ProgressRepo holds per-topic completion flags.
	ProgressRepo store.ProgressRepo

	// LearnerID is the platform user id, 0 when not configured.
	LearnerID int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	client := opts.Client
	if client == nil {
		client = backend.Noop{}
	}
	homeScreen := home.New(client, opts.EventRepo, opts.ProgressRepo, opts.LearnerID)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	// Focus reporting drives the active-time pause while the terminal
	// is in the background.
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			footerHints = hints
		}
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
