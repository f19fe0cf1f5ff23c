package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner wraps the bubbles spinner and colours it from the theme.
type Spinner struct {
	model spinner.Model
}

// NewSpinner creates a spinner using the mini dot frames.
func NewSpinner() Spinner {
	return Spinner{model: spinner.New(spinner.WithSpinner(spinner.MiniDot))}
}

// ID identifies the spinner's tick messages.
func (s Spinner) ID() int {
	return s.model.ID()
}

// Tick starts the animation. Use it as a tea.Cmd.
func (s Spinner) Tick() tea.Msg {
	return s.model.Tick()
}

// Update advances the spinner on its own tick messages and ignores the rest.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return s, nil
	}
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(tick)
	return s, cmd
}

// View renders the current frame.
func (s Spinner) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the current frame in the theme's focus colour.
func (s Spinner) ViewWithContext(ctx RenderContext) string {
	style := lipgloss.NewStyle().Foreground(fieldColorsFor(ctx.Theme).focus)
	return style.Render(s.model.View())
}
