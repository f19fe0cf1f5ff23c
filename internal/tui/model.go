package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// FieldSpec names one field of the demo form.
type FieldSpec struct {
	Name  string
	Props components.FieldProps
}

// Options configures the demo form.
type Options struct {
	Title          string
	Fields         []FieldSpec
	Theme          components.Theme
	NonInteractive bool
	Logger         *logger.Logger
}

// SubmitMsg reports the values of a form that passed validation.
type SubmitMsg struct {
	Values map[string]string
}

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Loading key.Binding
	Theme   key.Binding
	Submit  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Loading: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "toggle loading")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "light/dark")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Loading, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Loading, k.Theme},
		{k.Submit, k.Help, k.Quit},
	}
}

// Model contains the Bubbletea state for the demo form.
type Model struct {
	title          string
	names          []string
	fields         []*components.Field
	focus          int
	themes         *components.ThemeManager
	keys           keyMap
	help           help.Model
	width          int
	submitted      bool
	quitting       bool
	nonInteractive bool
	log            *logger.Logger
}

// NewModel constructs the demo form. The first field starts focused.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}

	m := Model{
		title:          opts.Title,
		names:          make([]string, 0, len(opts.Fields)),
		fields:         make([]*components.Field, 0, len(opts.Fields)),
		themes:         components.NewThemeManager(theme),
		keys:           defaultKeyMap(),
		help:           help.New(),
		nonInteractive: opts.NonInteractive,
		log:            log,
	}

	for _, spec := range opts.Fields {
		m.names = append(m.names, spec.Name)
		m.fields = append(m.fields, components.NewField(spec.Props))
	}
	if len(m.fields) > 0 && !m.nonInteractive {
		m.fields[0].Focus()
	}

	return m
}

// Init starts every field's animations. Non-interactive models quit at once.
func (m Model) Init() tea.Cmd {
	if m.nonInteractive {
		return tea.Quit
	}
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for _, field := range m.fields {
		cmds = append(cmds, field.Init())
	}
	return tea.Batch(cmds...)
}

// Focused returns the index of the focused field.
func (m Model) Focused() int {
	return m.focus
}

// Field returns the field at index i.
func (m Model) Field(i int) *components.Field {
	if i < 0 || i >= len(m.fields) {
		return nil
	}
	return m.fields[i]
}

// Len returns the number of fields.
func (m Model) Len() int {
	return len(m.fields)
}

// Theme returns the theme currently used for rendering.
func (m Model) Theme() components.Theme {
	return m.themes.Theme()
}

// Values returns the current value of every field by name.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for i, field := range m.fields {
		values[m.names[i]] = field.Value()
	}
	return values
}

// Submitted reports whether the form was submitted successfully.
func (m Model) Submitted() bool {
	return m.submitted
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
