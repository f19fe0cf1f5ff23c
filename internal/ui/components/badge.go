package components

import (
	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small label, handy as a leading field addon ("https://", "$").
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
	plain   bool
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if !b.plain {
		if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
			style = strategy.Apply(style, ctx.Theme)
		}
	}
	return style.Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.SetAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Restyle returns a copy of the badge that renders with style alone.
func (b *Badge) Restyle(style lipgloss.Style) ui.Renderable {
	c := *b
	c.BaseComponent = b.BaseComponent.replaced(style)
	c.plain = true
	return &c
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}
