package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
	fieldkiterrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

// darkLightness is the CIE L* below which a background counts as dark.
const darkLightness = 0.5

// BuildTheme turns a theme section into a components.Theme. Customised
// themes get their own name so style caches never mix them with the base.
func BuildTheme(cfg ThemeConfig) (components.Theme, error) {
	base, ok := components.ThemeByName(cfg.Base)
	if !ok {
		return components.Theme{}, fieldkiterrors.NewThemeError(cfg.Base, "unknown base theme", nil)
	}
	theme := base.Clone()

	switch {
	case cfg.Name != "":
		theme.Name = cfg.Name
	case cfg.Customised():
		theme.Name = base.Name + "-custom"
	}

	mode, err := resolveMode(cfg, base.Mode)
	if err != nil {
		return components.Theme{}, fieldkiterrors.NewThemeError(theme.Name, "cannot resolve mode", err)
	}
	theme.Mode = mode

	for target, value := range map[*lipgloss.Color]string{
		&theme.Field.Background: cfg.Background,
		&theme.Field.Border:     cfg.Border,
		&theme.Field.Error:      cfg.Error,
	} {
		if value == "" {
			continue
		}
		color, err := normalizeHex(value)
		if err != nil {
			return components.Theme{}, fieldkiterrors.NewThemeError(theme.Name, fmt.Sprintf("invalid color %q", value), err)
		}
		*target = color
	}

	for class, glyph := range cfg.Icons {
		theme.Icons[class] = glyph
	}

	applyTokens(&theme.Field, cfg.Field)
	if theme.Field.InvalidMarginBottom >= theme.Field.MarginBottom {
		return components.Theme{}, fieldkiterrors.NewThemeError(
			theme.Name,
			fmt.Sprintf("invalid_margin_bottom (%d) must be less than margin_bottom (%d)", theme.Field.InvalidMarginBottom, theme.Field.MarginBottom),
			nil,
		)
	}

	return theme.Normalize(), nil
}

func resolveMode(cfg ThemeConfig, fallback components.Mode) (components.Mode, error) {
	switch cfg.Mode {
	case "":
		return fallback, nil
	case "light":
		return components.ModeLight, nil
	case "dark":
		return components.ModeDark, nil
	case "auto":
		if cfg.Background == "" {
			if lipgloss.HasDarkBackground() {
				return components.ModeDark, nil
			}
			return components.ModeLight, nil
		}
		return ModeForBackground(cfg.Background)
	default:
		return fallback, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

// ModeForBackground picks dark mode for backgrounds whose perceived
// lightness is under half.
func ModeForBackground(hex string) (components.Mode, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return components.ModeLight, err
	}
	l, _, _ := c.Lab()
	if l < darkLightness {
		return components.ModeDark, nil
	}
	return components.ModeLight, nil
}

// normalizeHex expands short forms and lowercases, so #ABC becomes #aabbcc.
func normalizeHex(hex string) (lipgloss.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", err
	}
	return lipgloss.Color(c.Hex()), nil
}

func applyTokens(tokens *components.FieldTokens, cfg FieldTokensConfig) {
	if cfg.SlotPadding != nil {
		tokens.SlotPadding = *cfg.SlotPadding
	}
	if cfg.MarginBottom != nil {
		tokens.MarginBottom = *cfg.MarginBottom
	}
	if cfg.InvalidMarginBottom != nil {
		tokens.InvalidMarginBottom = *cfg.InvalidMarginBottom
	}
	if cfg.IconWidth != nil {
		tokens.IconWidth = *cfg.IconWidth
	}
	if cfg.MinInputWidth != nil {
		tokens.MinInputWidth = *cfg.MinInputWidth
	}
}
