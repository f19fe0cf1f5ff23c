package components

import (
	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FieldAttrs are the attributes of the underlying text input. They are
// forwarded as-is; the field never inspects them.
type FieldAttrs struct {
	Placeholder     string
	Value           string
	Prompt          string
	CharLimit       int
	Width           int
	EchoMode        textinput.EchoMode
	EchoCharacter   rune
	Validate        textinput.ValidateFunc
	OnChange        func(value string)
	Suggestions     []string
	ShowSuggestions bool
}

func (a FieldAttrs) apply(m *textinput.Model) {
	m.Placeholder = a.Placeholder
	m.Prompt = a.Prompt
	m.CharLimit = a.CharLimit
	m.Width = a.Width
	m.EchoMode = a.EchoMode
	if a.EchoCharacter != 0 {
		m.EchoCharacter = a.EchoCharacter
	}
	m.Validate = a.Validate
	m.ShowSuggestions = a.ShowSuggestions
	if len(a.Suggestions) > 0 {
		m.SetSuggestions(a.Suggestions)
	}
	if a.Value != "" {
		m.SetValue(a.Value)
	}
}

// FieldProps configures a Field. The five top-level props drive styling and
// layout; everything else travels in Attrs.
type FieldProps struct {
	Invalid     bool
	Icon        string
	Loading     bool
	AddonBefore ui.Renderable
	AddonAfter  ui.Renderable
	Attrs       FieldAttrs
}

// Flags derives the styling flags from the props.
func (p FieldProps) Flags() FieldFlags {
	return FieldFlags{
		Invalid:        p.Invalid,
		HasPrefix:      p.Icon != "",
		HasSuffix:      p.Loading,
		HasAddonBefore: p.AddonBefore != nil,
		HasAddonAfter:  p.AddonAfter != nil,
	}
}

// FieldSlot identifies a position inside a field. Slots always appear in
// declaration order.
type FieldSlot int

const (
	SlotAddonBefore FieldSlot = iota
	SlotPrefix
	SlotInput
	SlotSuffix
	SlotAddonAfter
)

func (s FieldSlot) String() string {
	switch s {
	case SlotAddonBefore:
		return "addonBefore"
	case SlotPrefix:
		return "prefix"
	case SlotInput:
		return "input"
	case SlotSuffix:
		return "suffix"
	case SlotAddonAfter:
		return "addonAfter"
	default:
		return "unknown"
	}
}

// FieldNode is one present slot: a wrapper style around a single child.
type FieldNode struct {
	Slot  FieldSlot
	Style lipgloss.Style
	Child ui.Renderable
}

// View renders the node with the default context.
func (n FieldNode) View() string {
	return n.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child inside the wrapper style.
func (n FieldNode) ViewWithContext(ctx RenderContext) string {
	return n.Style.Render(renderChild(n.Child, ctx))
}

// NativeInput exposes the field's text input as a renderable node child.
type NativeInput struct {
	model textinput.Model
}

// Model returns the text input as it will be rendered.
func (n NativeInput) Model() textinput.Model {
	return n.model
}

// View renders the text input.
func (n NativeInput) View() string {
	return n.model.View()
}

// Field is a themed single-line text input with an optional prefix icon,
// loading suffix, leading and trailing addons, and an invalid state.
type Field struct {
	BaseComponent
	props   FieldProps
	input   textinput.Model
	spinner Spinner
	cache   *FieldStyleCache
}

// NewField creates a field from props.
func NewField(props FieldProps) *Field {
	input := textinput.New()
	props.Attrs.apply(&input)

	return &Field{
		BaseComponent: NewBaseComponent(),
		props:         props,
		input:         input,
		spinner:       NewSpinner(),
		cache:         NewFieldStyleCache(),
	}
}

// Props returns the current props. Attrs.Value reflects what has been typed.
func (f *Field) Props() FieldProps {
	props := f.props
	props.Attrs.Value = f.input.Value()
	return props
}

// Input returns the underlying text input model.
func (f *Field) Input() textinput.Model {
	return f.input
}

// Styles resolves the style set for the field's current props and focus.
func (f *Field) Styles(theme Theme) FieldStyles {
	styles := f.cache.Resolve(theme, f.props.Flags())
	if f.input.Focused() {
		styles = styles.Focused(theme)
	}
	return styles
}

// Layout returns the present slots in render order.
func (f *Field) Layout(ctx RenderContext) []FieldNode {
	styles := f.Styles(ctx.Theme)
	flags := f.props.Flags()

	nodes := make([]FieldNode, 0, 5)
	if flags.HasAddonBefore {
		nodes = append(nodes, FieldNode{
			Slot:  SlotAddonBefore,
			Style: styles.AddonEdge(true, false),
			Child: restyleAddon(f.props.AddonBefore, styles.AddonOverride),
		})
	}
	if flags.HasPrefix {
		nodes = append(nodes, FieldNode{
			Slot:  SlotPrefix,
			Style: styles.Prefix,
			Child: NewIcon(f.props.Icon),
		})
	}

	inputIndex := len(nodes)
	nodes = append(nodes, FieldNode{Slot: SlotInput, Style: styles.Input})

	if flags.HasSuffix {
		nodes = append(nodes, FieldNode{
			Slot:  SlotSuffix,
			Style: styles.Suffix,
			Child: f.spinner,
		})
	}
	if flags.HasAddonAfter {
		nodes = append(nodes, FieldNode{
			Slot:  SlotAddonAfter,
			Style: styles.AddonEdge(false, true),
			Child: restyleAddon(f.props.AddonAfter, styles.AddonOverride),
		})
	}

	nodes[inputIndex].Child = NativeInput{model: f.fitInput(ctx, styles, nodes, inputIndex)}
	return nodes
}

// fitInput colours a copy of the text input and, under a width constraint,
// narrows it so the whole control fits.
func (f *Field) fitInput(ctx RenderContext, styles FieldStyles, nodes []FieldNode, inputIndex int) textinput.Model {
	model := f.input
	background := styles.Input.GetBackground()
	model.TextStyle = model.TextStyle.Foreground(styles.Input.GetForeground()).Background(background)
	model.PlaceholderStyle = model.PlaceholderStyle.Foreground(fieldColorsFor(ctx.Theme).muted).Background(background)
	model.PromptStyle = model.PromptStyle.Background(background)

	// An unsized input only draws the first rune of its placeholder.
	if model.Width <= 0 && model.Placeholder != "" {
		model.Width = max(ctx.Theme.Field.MinInputWidth, lipgloss.Width(model.Placeholder))
	}

	if ctx.Constraints.MaxWidth <= 0 {
		return model
	}

	// One extra cell for the cursor.
	used := styles.Input.GetHorizontalFrameSize() + lipgloss.Width(model.Prompt) + 1
	for i, node := range nodes {
		if i != inputIndex {
			used += lipgloss.Width(node.ViewWithContext(ctx))
		}
	}

	available := max(ctx.Theme.Field.MinInputWidth, ctx.Constraints.MaxWidth-used)
	if model.Width <= 0 || model.Width > available {
		model.Width = available
	}
	return model
}

func restyleAddon(addon ui.Renderable, override lipgloss.Style) ui.Renderable {
	if restylable, ok := addon.(Restylable); ok {
		return restylable.Restyle(override)
	}
	return addon
}

// View renders the field with the default theme.
func (f *Field) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field using the theme carried by ctx.
func (f *Field) ViewWithContext(ctx RenderContext) string {
	nodes := f.Layout(ctx)
	children := make([]ui.Renderable, 0, len(nodes))
	for _, node := range nodes {
		children = append(children, node)
	}

	container := f.ComputeStyle(ctx.Theme).Inherit(f.Styles(ctx.Theme).Container)
	return HStack(children...).WithStyle(container).ViewWithContext(ctx)
}

// WithAppliers applies theme-based style modifiers to the container.
func (f *Field) WithAppliers(appliers ...StyleFunc) *Field {
	f.SetAppliers(appliers...)
	return f
}

// Init starts the cursor blink and, when loading, the spinner.
func (f *Field) Init() tea.Cmd {
	var cmds []tea.Cmd
	if f.input.Focused() {
		cmds = append(cmds, textinput.Blink)
	}
	if f.props.Loading {
		cmds = append(cmds, f.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update routes spinner ticks to the spinner while loading and everything
// else to the text input. OnChange fires when typing changes the value.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !f.props.Loading {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(tick)
		return f, cmd
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if after := f.input.Value(); after != before && f.props.Attrs.OnChange != nil {
		f.props.Attrs.OnChange(after)
	}
	return f, cmd
}

// Focus focuses the text input.
func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the text input.
func (f *Field) Blur() {
	f.input.Blur()
}

// Focused reports whether the text input has focus.
func (f *Field) Focused() bool {
	return f.input.Focused()
}

// Value returns the current text.
func (f *Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the text without firing OnChange.
func (f *Field) SetValue(value string) {
	f.input.SetValue(value)
}

// Err returns the text input's validation error, if any.
func (f *Field) Err() error {
	return f.input.Err
}

// SetInvalid toggles the invalid state.
func (f *Field) SetInvalid(invalid bool) {
	f.props.Invalid = invalid
}

// SetIcon replaces the prefix icon class. An empty class removes the prefix.
func (f *Field) SetIcon(class string) {
	f.props.Icon = class
}

// SetAddons replaces both addons. Nil removes an addon.
func (f *Field) SetAddons(before, after ui.Renderable) {
	f.props.AddonBefore = before
	f.props.AddonAfter = after
}

// SetLoading toggles the loading suffix. Turning it on returns the command
// that starts the spinner.
func (f *Field) SetLoading(loading bool) tea.Cmd {
	wasLoading := f.props.Loading
	f.props.Loading = loading
	if loading && !wasLoading {
		return f.spinner.Tick
	}
	return nil
}
