package components

import (
	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme. This is the core abstraction for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// A non-composite strategy is wrapped so its logic still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
		return
	}

	currentStrategy := b.strategy
	wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if currentStrategy != nil {
			base = currentStrategy.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// replaced returns a base whose style is exactly style, with no strategy left
// to layer anything on top of it.
func (b BaseComponent) replaced(style lipgloss.Style) BaseComponent {
	return BaseComponent{style: style}
}

// Restylable is implemented by components whose styling can be swapped out
// wholesale. Restyle returns a copy; the receiver is left untouched.
type Restylable interface {
	ui.Renderable
	Restyle(style lipgloss.Style) ui.Renderable
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  -1, // -1 means unlimited
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  maxWidth,
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext provides layout information and theme to components during rendering.
// The theme travels with the context, so there is no global theme state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders child with ctx when it accepts one.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)
