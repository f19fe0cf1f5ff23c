package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconGlyph(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	cases := []struct {
		name  string
		class string
		want  string
	}{
		{name: "known class", class: "icon-search", want: "⌕"},
		{name: "unknown class falls back to name", class: "icon-rocket", want: "ro"},
		{name: "no prefix", class: "x", want: "x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewIcon(tc.class).Glyph(theme))
		})
	}
}

func TestIconGlyphHonoursThemeIcons(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme().Clone()
	theme.Icons["icon-rocket"] = "^"
	theme.Field.IconWidth = 4

	assert.Equal(t, "^", NewIcon("icon-rocket").Glyph(theme))
	assert.Equal(t, "plan", NewIcon("icon-planet").Glyph(theme))

	// The shared default set is unaffected.
	_, ok := DefaultTheme().Icons.Glyph("icon-rocket")
	assert.False(t, ok)
}

func TestIconViewWithContext(t *testing.T) {
	t.Parallel()

	icon := NewIcon("icon-check").WithAppliers(PaddingX(SpacingSizeExtraSmall))
	view := icon.ViewWithContext(DefaultContext())

	assert.Equal(t, " ✓ ", view)
	assert.Equal(t, "icon-check", icon.Class())
}

func TestIconRestyleLeavesOriginal(t *testing.T) {
	t.Parallel()

	icon := NewIcon("icon-star").WithAppliers(PaddingX(SpacingSizeLarge))
	restyled, ok := icon.Restyle(lipgloss.NewStyle()).(*Icon)
	require.True(t, ok)

	assert.Equal(t, "★", restyled.View())
	assert.Equal(t, 9, lipgloss.Width(icon.View()))
}
