package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Each field's spinner drops ticks that carry another spinner's ID.
	case spinner.TickMsg:
		cmds := make([]tea.Cmd, 0, len(m.fields))
		for _, field := range m.fields {
			_, cmd := field.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if field := m.Field(m.focus); field != nil {
		_, cmd := field.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Loading):
		field := m.Field(m.focus)
		if field == nil {
			return m, nil
		}
		loading := !field.Props().Loading
		m.log.Debug("toggle loading", "field", m.names[m.focus], "loading", loading)
		return m, field.SetLoading(loading)

	case key.Matches(msg, m.keys.Theme):
		next := components.DarkTheme()
		if m.themes.Theme().Mode == components.ModeDark {
			next = components.LightTheme()
		}
		m.themes.SetTheme(next)
		m.log.Debug("switch theme", "theme", next.Name)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	field := m.Field(m.focus)
	if field == nil {
		return m, nil
	}
	_, cmd := field.Update(msg)
	m.revalidate(field)
	return m, cmd
}

// moveFocus cycles focus by delta, wrapping at both ends.
func (m *Model) moveFocus(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.log.Debug("focus field", "field", m.names[m.focus])
	return m.fields[m.focus].Focus()
}

// revalidate flips a field with a validate function to invalid while its
// value fails validation.
func (m *Model) revalidate(field *components.Field) {
	if field.Input().Validate == nil {
		return
	}
	field.SetInvalid(field.Err() != nil)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	firstInvalid := -1
	for i, field := range m.fields {
		if validate := field.Input().Validate; validate != nil {
			err := validate(field.Value())
			field.SetInvalid(err != nil)
			if err != nil && firstInvalid < 0 {
				firstInvalid = i
			}
		}
	}

	if firstInvalid >= 0 {
		m.submitted = false
		return m, m.moveFocus(firstInvalid - m.focus)
	}

	m.submitted = true
	values := m.Values()
	m.log.Info("form submitted", "fields", len(values))
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}
