package config

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
	fieldkiterrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

func TestBuildThemeFromBase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cfg      ThemeConfig
		wantName string
		wantMode components.Mode
	}{
		{name: "empty section", cfg: ThemeConfig{}, wantName: "default", wantMode: components.ModeLight},
		{name: "dark base", cfg: ThemeConfig{Base: "dark"}, wantName: "dark", wantMode: components.ModeDark},
		{name: "explicit mode", cfg: ThemeConfig{Base: "dark", Mode: "light"}, wantName: "dark-custom", wantMode: components.ModeLight},
		{name: "auto with dark background", cfg: ThemeConfig{Mode: "auto", Background: "#0b1120"}, wantName: "default-custom", wantMode: components.ModeDark},
		{name: "auto with light background", cfg: ThemeConfig{Base: "dark", Mode: "auto", Background: "#f8fafc"}, wantName: "dark-custom", wantMode: components.ModeLight},
		{name: "named theme", cfg: ThemeConfig{Name: "brand", Border: "#123456"}, wantName: "brand", wantMode: components.ModeLight},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			theme, err := BuildTheme(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, theme.Name)
			assert.Equal(t, tc.wantMode, theme.Mode)
		})
	}
}

func TestBuildThemeColoursFlowIntoFieldStyles(t *testing.T) {
	t.Parallel()

	theme, err := BuildTheme(ThemeConfig{Border: "#ABC", Error: "#f87171", Background: "#0b1120"})
	require.NoError(t, err)

	assert.Equal(t, lipgloss.Color("#aabbcc"), theme.Field.Border)

	styles := components.ResolveFieldStyles(theme, components.FieldFlags{})
	assert.Equal(t, lipgloss.Color("#aabbcc"), styles.Input.GetBorderTopForeground())
	assert.Equal(t, lipgloss.Color("#0b1120"), styles.Input.GetBackground())

	invalid := components.ResolveFieldStyles(theme, components.FieldFlags{Invalid: true})
	assert.Equal(t, lipgloss.Color("#f87171"), invalid.Input.GetBorderTopForeground())
}

func TestBuildThemeMergesIconsWithoutSharing(t *testing.T) {
	t.Parallel()

	theme, err := BuildTheme(ThemeConfig{Icons: map[string]string{"icon-rocket": "^", "icon-search": "?"}})
	require.NoError(t, err)

	glyph, ok := theme.Icons.Glyph("icon-rocket")
	require.True(t, ok)
	assert.Equal(t, "^", glyph)

	builtin, _ := components.DefaultTheme().Icons.Glyph("icon-search")
	assert.Equal(t, "⌕", builtin)
}

func TestBuildThemeAppliesTokens(t *testing.T) {
	t.Parallel()

	theme, err := BuildTheme(ThemeConfig{Field: FieldTokensConfig{
		MarginBottom:        intPtr(3),
		InvalidMarginBottom: intPtr(1),
		IconWidth:           intPtr(4),
	}})
	require.NoError(t, err)

	assert.Equal(t, 3, theme.Field.MarginBottom)
	assert.Equal(t, 1, theme.Field.InvalidMarginBottom)
	assert.Equal(t, 4, theme.Field.IconWidth)
	assert.Equal(t, components.DefaultFieldTokens().MinInputWidth, theme.Field.MinInputWidth)
}

func TestBuildThemeErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  ThemeConfig
	}{
		{name: "unknown base", cfg: ThemeConfig{Base: "solarized"}},
		{name: "unknown mode", cfg: ThemeConfig{Mode: "sepia"}},
		{name: "margins collapse", cfg: ThemeConfig{Field: FieldTokensConfig{MarginBottom: intPtr(0)}}},
		{name: "bad colour", cfg: ThemeConfig{Border: "teal"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := BuildTheme(tc.cfg)
			var themeErr *fieldkiterrors.ThemeError
			require.ErrorAs(t, err, &themeErr)
		})
	}
}

func TestModeForBackground(t *testing.T) {
	t.Parallel()

	mode, err := ModeForBackground("#000")
	require.NoError(t, err)
	assert.Equal(t, components.ModeDark, mode)

	mode, err = ModeForBackground("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, components.ModeLight, mode)

	_, err = ModeForBackground("nope")
	require.Error(t, err)
}
