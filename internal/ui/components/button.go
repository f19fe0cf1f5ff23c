package components

import (
	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Button is a visual-only button, typically used as a trailing field addon.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	plain    bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if b.plain {
		return style
	}

	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// Restyle returns a copy of the button that renders with style alone: no
// variant colours and no state styling.
func (b *Button) Restyle(style lipgloss.Style) ui.Renderable {
	c := *b
	c.BaseComponent = b.BaseComponent.replaced(style)
	c.plain = true
	return &c
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// MutedButton creates a muted/neutral button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}
