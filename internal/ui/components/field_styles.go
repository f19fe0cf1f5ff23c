package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Slot names reported by FieldStyles.Slots.
const (
	SlotNameContainer     = "container"
	SlotNamePrefix        = "prefix"
	SlotNameSuffix        = "suffix"
	SlotNameAddon         = "addon"
	SlotNameAddonOverride = "addonOverride"
	SlotNameInput         = "input"
)

// FieldFlags is everything about a field's props that changes its styling.
// It is comparable and keys the style cache.
type FieldFlags struct {
	Invalid        bool
	HasPrefix      bool
	HasSuffix      bool
	HasAddonBefore bool
	HasAddonAfter  bool
}

// FieldStyles is the resolved style set for one field render.
type FieldStyles struct {
	Container     lipgloss.Style
	Prefix        lipgloss.Style
	Suffix        lipgloss.Style
	Addon         lipgloss.Style
	AddonOverride lipgloss.Style
	Input         lipgloss.Style

	invalid bool
	rounded lipgloss.Border
}

// Slots returns the style set keyed by slot name. The key set never varies.
func (s FieldStyles) Slots() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		SlotNameContainer:     s.Container,
		SlotNamePrefix:        s.Prefix,
		SlotNameSuffix:        s.Suffix,
		SlotNameAddon:         s.Addon,
		SlotNameAddonOverride: s.AddonOverride,
		SlotNameInput:         s.Input,
	}
}

// AddonEdge derives the wrapper style for an addon sitting at the outer edge
// of the control. The first child rounds and borders its left side, the last
// child its right side; inner edges stay square.
func (s FieldStyles) AddonEdge(first, last bool) lipgloss.Style {
	style := s.Addon
	border := style.GetBorderStyle()
	if first {
		border.TopLeft = s.rounded.TopLeft
		border.BottomLeft = s.rounded.BottomLeft
		style = style.BorderLeft(true)
	}
	if last {
		border.TopRight = s.rounded.TopRight
		border.BottomRight = s.rounded.BottomRight
		style = style.BorderRight(true)
	}
	return style.BorderStyle(border)
}

// Focused returns a copy whose borders use the theme's focus colour. Invalid
// sets keep their error colour.
func (s FieldStyles) Focused(theme Theme) FieldStyles {
	if s.invalid {
		return s
	}
	focus := fieldColorsFor(theme).focus
	s.Container = s.Container.BorderForeground(focus)
	s.Prefix = s.Prefix.BorderForeground(focus)
	s.Suffix = s.Suffix.BorderForeground(focus)
	s.Addon = s.Addon.BorderForeground(focus)
	s.Input = s.Input.BorderForeground(focus)
	return s
}

type fieldColors struct {
	background      lipgloss.Color
	addonBackground lipgloss.Color
	border          lipgloss.Color
	error           lipgloss.Color
	focus           lipgloss.Color
	text            lipgloss.Color
	muted           lipgloss.Color
}

func fieldColorsFor(theme Theme) fieldColors {
	slate, red, blue := theme.Colors.Slate, theme.Colors.Red, theme.Colors.Blue

	var colors fieldColors
	if theme.Mode == ModeDark {
		colors = fieldColors{
			background:      slate.Color(PaletteShade900),
			addonBackground: slate.Color(PaletteShade800),
			border:          slate.Color(PaletteShade600),
			error:           red.Color(PaletteShade400),
			focus:           blue.Color(PaletteShade400),
			text:            slate.Color(PaletteShade50),
			muted:           slate.Color(PaletteShade400),
		}
	} else {
		colors = fieldColors{
			background:      slate.Color(PaletteShade50),
			addonBackground: slate.Color(PaletteShade100),
			border:          slate.Color(PaletteShade300),
			error:           red.Color(PaletteShade500),
			focus:           blue.Color(PaletteShade500),
			text:            slate.Color(PaletteShade900),
			muted:           slate.Color(PaletteShade500),
		}
	}

	if theme.Field.Background != "" {
		colors.background = theme.Field.Background
	}
	if theme.Field.Border != "" {
		colors.border = theme.Field.Border
	}
	if theme.Field.Error != "" {
		colors.error = theme.Field.Error
	}
	return colors
}

// ResolveFieldStyles computes the style set for a field from the theme and
// flags. It is pure: the same inputs always give the same set.
func ResolveFieldStyles(theme Theme, flags FieldFlags) FieldStyles {
	colors := fieldColorsFor(theme)
	tokens := theme.Field

	borderColor := colors.border
	if flags.Invalid {
		borderColor = colors.error
	}

	rounded := theme.Borders.Rounded
	square := theme.Borders.Normal

	// Which side of the input box some other slot already closes.
	leftTaken := flags.HasPrefix || flags.HasAddonBefore
	rightTaken := flags.HasSuffix || flags.HasAddonAfter

	inputBorder := rounded
	if leftTaken {
		inputBorder = squareLeft(inputBorder, square)
	}
	if rightTaken {
		inputBorder = squareRight(inputBorder, square)
	}

	marginBottom := tokens.MarginBottom
	if flags.Invalid {
		marginBottom = tokens.InvalidMarginBottom
	}

	input := lipgloss.NewStyle().
		Border(inputBorder, true, !rightTaken, true, !leftTaken).
		BorderForeground(borderColor).
		Background(colors.background).
		Foreground(colors.text).
		MarginBottom(marginBottom)
	if !leftTaken {
		input = input.PaddingLeft(tokens.SlotPadding)
	}
	if !rightTaken {
		input = input.PaddingRight(tokens.SlotPadding)
	}

	// The prefix closes the left edge unless an addon sits in front of it.
	prefixBorder := rounded
	if flags.HasAddonBefore {
		prefixBorder = square
	}
	prefix := lipgloss.NewStyle().
		Border(prefixBorder, true, false, true, !flags.HasAddonBefore).
		BorderForeground(borderColor).
		Background(colors.background).
		Foreground(colors.muted).
		PaddingLeft(tokens.SlotPadding).
		PaddingRight(tokens.SlotPadding)

	suffixBorder := rounded
	if flags.HasAddonAfter {
		suffixBorder = square
	}
	suffix := lipgloss.NewStyle().
		Border(suffixBorder, true, !flags.HasAddonAfter, true, false).
		BorderForeground(borderColor).
		Background(colors.background).
		Foreground(colors.muted).
		PaddingLeft(tokens.SlotPadding).
		PaddingRight(tokens.SlotPadding)

	addon := lipgloss.NewStyle().
		Border(square, true).
		BorderForeground(borderColor).
		Background(colors.addonBackground).
		Foreground(colors.text).
		PaddingLeft(tokens.SlotPadding).
		PaddingRight(tokens.SlotPadding)

	// Replaces whatever the addon element carried so it blends into the
	// addon wrapper.
	override := lipgloss.NewStyle().
		Background(colors.addonBackground).
		Foreground(colors.text)

	container := lipgloss.NewStyle().
		BorderForeground(borderColor).
		Foreground(colors.text)

	return FieldStyles{
		Container:     container,
		Prefix:        prefix,
		Suffix:        suffix,
		Addon:         addon,
		AddonOverride: override,
		Input:         input,
		invalid:       flags.Invalid,
		rounded:       rounded,
	}
}

func squareLeft(b, square lipgloss.Border) lipgloss.Border {
	b.TopLeft = square.TopLeft
	b.BottomLeft = square.BottomLeft
	return b
}

func squareRight(b, square lipgloss.Border) lipgloss.Border {
	b.TopRight = square.TopRight
	b.BottomRight = square.BottomRight
	return b
}

type fieldStyleKey struct {
	theme string
	flags FieldFlags
}

// FieldStyleCache memoizes ResolveFieldStyles. Entries are keyed by theme
// name, so two different themes must not share a name.
type FieldStyleCache struct {
	mu      sync.RWMutex
	entries map[fieldStyleKey]FieldStyles
}

// NewFieldStyleCache allocates an empty cache.
func NewFieldStyleCache() *FieldStyleCache {
	return &FieldStyleCache{entries: make(map[fieldStyleKey]FieldStyles)}
}

// Resolve returns the cached style set, computing it on first use.
func (c *FieldStyleCache) Resolve(theme Theme, flags FieldFlags) FieldStyles {
	if c == nil {
		return ResolveFieldStyles(theme, flags)
	}

	key := fieldStyleKey{theme: theme.Name, flags: flags}

	c.mu.RLock()
	styles, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return styles
	}

	styles = ResolveFieldStyles(theme, flags)

	c.mu.Lock()
	c.entries[key] = styles
	c.mu.Unlock()

	return styles
}

// Len reports how many style sets are cached.
func (c *FieldStyleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every cached entry.
func (c *FieldStyleCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[fieldStyleKey]FieldStyles)
	c.mu.Unlock()
}
