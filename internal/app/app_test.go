package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestViewRequestsFocusReporting(t *testing.T) {
	m := newAppModel(Options{})

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	v := model.(AppModel).View()
	if !v.ReportFocus {
		t.Error("expected frame to request focus reporting")
	}
	if !v.AltScreen {
		t.Error("expected alt screen frame")
	}
}

func TestFocusReportingRequestedBeforeFirstResize(t *testing.T) {
	// The zero-size frame rendered before the first WindowSizeMsg must
	// already request focus reporting.
	v := newAppModel(Options{}).View()
	if !v.ReportFocus {
		t.Error("expected empty frame to request focus reporting")
	}
}
