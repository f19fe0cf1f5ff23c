package components

import (
	"strings"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Icon is an icon-font element: a class name resolved to a glyph through the
// theme's icon set.
type Icon struct {
	BaseComponent
	class string
}

// NewIcon creates an icon for the given icon-font class.
func NewIcon(class string) *Icon {
	return &Icon{
		BaseComponent: NewBaseComponent(),
		class:         class,
	}
}

// Class returns the icon-font class name.
func (i *Icon) Class() string {
	return i.class
}

// Glyph returns the text drawn for the icon. Unknown classes fall back to the
// class name without its "icon-" prefix, cut to the theme's icon width.
func (i *Icon) Glyph(theme Theme) string {
	if glyph, ok := theme.Icons.Glyph(i.class); ok {
		return glyph
	}
	name := strings.TrimPrefix(i.class, "icon-")
	return truncate.String(name, uint(max(theme.Field.IconWidth, 1)))
}

// View renders the icon.
func (i *Icon) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon with the given theme context.
func (i *Icon) ViewWithContext(ctx RenderContext) string {
	return i.ComputeStyle(ctx.Theme).Render(i.Glyph(ctx.Theme))
}

// WithAppliers applies theme-based style modifiers.
func (i *Icon) WithAppliers(appliers ...StyleFunc) *Icon {
	i.SetAppliers(appliers...)
	return i
}

// Restyle returns a copy of the icon carrying only style.
func (i *Icon) Restyle(style lipgloss.Style) ui.Renderable {
	c := *i
	c.BaseComponent = i.BaseComponent.replaced(style)
	return &c
}
