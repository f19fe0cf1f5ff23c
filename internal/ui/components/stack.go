package components

import (
	"strings"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	crossAlign  CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context. Children receive the
// merged constraints unchanged; empty child views are skipped.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(effective)

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(lipgloss.JoinHorizontal, " ", views)
	} else {
		content = s.join(lipgloss.JoinVertical, "\n", views)
	}

	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}

	return style.Render(content)
}

// mergeConstraints keeps whichever of the stack's and the parent's limits is tighter.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent

	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}

	return result
}

func (s *Stack) join(joiner func(lipgloss.Position, ...string) string, unit string, views []string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return joiner(pos, views...)
	}

	spacer := strings.Repeat(unit, s.gap)
	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return joiner(pos, spaced...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithStyle sets the stack style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}
