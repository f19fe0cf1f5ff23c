package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle        = lipgloss.NewStyle().Faint(true)
	focusedLabelStyle = lipgloss.NewStyle().Bold(true)
	errorLineStyle    = lipgloss.NewStyle().MarginBottom(1)
	submittedStyle    = lipgloss.NewStyle().Bold(true).MarginTop(1)
)
