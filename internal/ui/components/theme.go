package components

import (
	"maps"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades represents a Tailwind-style color scale with 10 shades from lightest to darkest.
// Shades are indexed from 50 (lightest) to 900 (darkest), matching Tailwind's numbering.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a palette shade scale from the provided colors.
// Colors should be ordered from lightest to darkest. Accepts up to 10 colors.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the color at the specified shade level.
// Returns an empty string if the shade is out of bounds.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette holds the raw color families the semantic palette is drawn from.
type ColorPalette struct {
	Slate PaletteShades
	Blue  PaletteShades
	Green PaletteShades
	Red   PaletteShades
	Amber PaletteShades
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// Mode discriminates light from dark themes.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantMuted
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// FieldTokens sizes and optionally recolours text fields. Zero colours mean
// "derive from the colour families for the theme's mode".
type FieldTokens struct {
	SlotPadding         int
	MarginBottom        int
	InvalidMarginBottom int
	IconWidth           int
	MinInputWidth       int

	Background lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
}

// IconSet maps icon-font class names to the glyph drawn for them.
type IconSet map[string]string

// Glyph returns the glyph registered for class.
func (s IconSet) Glyph(class string) (string, bool) {
	glyph, ok := s[class]
	return glyph, ok
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Themes are created once and passed by
// value through RenderContext; modifications produce new values.
type Theme struct {
	Name       string
	Mode       Mode
	Palette    Palette
	Colors     ColorPalette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Field      FieldTokens
	Icons      IconSet
	Variants   *VariantRegistry
}

// Normalize returns a new theme with all fields properly initialized.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	t.Field = normalizeFieldTokens(t.Field)
	if t.Icons == nil {
		t.Icons = DefaultIcons()
	}
	if t.Variants == nil {
		t.Variants = defaultVariants()
	}
	return t
}

// Clone returns a copy that shares no mutable state with t.
func (t Theme) Clone() Theme {
	t.Icons = maps.Clone(t.Icons)
	return t
}

// ThemeManager coordinates access to a swappable Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme.Normalize().Clone()}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = theme.Normalize().Clone()
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme.Clone()
}

// Context returns a render context carrying the managed theme.
func (m *ThemeManager) Context() RenderContext {
	return DefaultContext().WithTheme(m.Theme())
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

func normalizeFieldTokens(tokens FieldTokens) FieldTokens {
	if tokens.IconWidth <= 0 {
		tokens.IconWidth = 2
	}
	if tokens.MinInputWidth <= 0 {
		tokens.MinInputWidth = 8
	}
	return tokens
}

// DefaultFieldTokens returns the sizing used by the built-in themes. The
// invalid bottom margin is tighter so an error line can sit right under the field.
func DefaultFieldTokens() FieldTokens {
	return FieldTokens{
		SlotPadding:         1,
		MarginBottom:        1,
		InvalidMarginBottom: 0,
		IconWidth:           2,
		MinInputWidth:       8,
	}
}

// DefaultIcons returns the built-in icon-font classes.
func DefaultIcons() IconSet {
	return IconSet{
		"icon-search":   "⌕",
		"icon-user":     "☺",
		"icon-lock":     "🔒",
		"icon-mail":     "✉",
		"icon-link":     "⛓",
		"icon-calendar": "▦",
		"icon-star":     "★",
		"icon-warning":  "⚠",
		"icon-check":    "✓",
		"icon-edit":     "✎",
	}
}

// DefaultTheme returns the default (light) theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	theme := Theme{
		Name:    "default",
		Mode:    ModeLight,
		Palette: palette,
		Colors:  defaultColorFamilies(),
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
		Field:      DefaultFieldTokens(),
		Icons:      DefaultIcons(),
		Variants:   defaultVariants(),
	}

	return theme.Normalize()
}

func defaultColorFamilies() ColorPalette {
	return ColorPalette{
		Slate: NewPaletteShades(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Blue: NewPaletteShades(
			"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
			"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
		),
		Green: NewPaletteShades(
			"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
			"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
		),
		Red: NewPaletteShades(
			"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
			"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
		),
		Amber: NewPaletteShades(
			"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
			"#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f",
		),
	}
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(ButtonVariantMuted, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantSuccess, NewCompositeStrategy(
		Background(PaletteSuccess),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantWarning, NewCompositeStrategy(
		Background(PaletteWarning),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantError, NewCompositeStrategy(
		Background(PaletteDanger),
		PaddingX(SpacingSizeExtraSmall),
	))
	return registry
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base),
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Mode = ModeDark

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	theme.Variants = defaultVariants()

	return theme.Normalize()
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	return theme
}

// ThemeByName returns one of the built-in themes.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "light":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//   - Contrast: An accent color that "pops" against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
//
// Example:
//
//	badge := NewBadge("new").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
