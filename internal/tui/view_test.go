package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestViewRendersEveryField(t *testing.T) {
	m := NewModel(sampleOptions())
	view := m.View()

	require.Contains(t, view, "Sign up")
	for _, name := range []string{"website", "user", "search"} {
		require.Contains(t, view, name)
	}
	require.Contains(t, view, "https://")
	require.Contains(t, view, "esc")
}

func TestViewShowsValidationMessage(t *testing.T) {
	var m tea.Model = NewModel(sampleOptions())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "a")

	require.Contains(t, m.View(), errTooShort.Error())
}

func TestViewShowsSubmission(t *testing.T) {
	var m tea.Model = NewModel(sampleOptions())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "gopher")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Contains(t, m.View(), "Submitted")
}

func TestViewNonInteractiveOmitsHelp(t *testing.T) {
	opts := sampleOptions()
	opts.NonInteractive = true

	view := NewModel(opts).View()
	require.NotContains(t, view, "toggle loading")
	require.Contains(t, view, "website")
}

func TestViewRespectsWindowWidth(t *testing.T) {
	var m tea.Model = NewModel(sampleOptions())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60})

	for _, line := range strings.Split(m.View(), "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}
