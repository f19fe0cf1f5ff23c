package config

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

func TestFieldConfigProps(t *testing.T) {
	t.Parallel()

	field := FieldConfig{
		Name:        "website",
		Placeholder: "example",
		Value:       "charm",
		Icon:        "icon-link",
		Loading:     true,
		Invalid:     true,
		AddonBefore: "https://",
		AddonAfter:  ".com",
		Echo:        "password",
		CharLimit:   40,
		Width:       24,
		Suggestions: []string{"charm", "", "charm", "bubbles"},
	}

	props, err := field.Props()
	require.NoError(t, err)

	assert.True(t, props.Invalid)
	assert.True(t, props.Loading)
	assert.Equal(t, "icon-link", props.Icon)
	assert.Equal(t, components.FieldFlags{
		Invalid: true, HasPrefix: true, HasSuffix: true, HasAddonBefore: true, HasAddonAfter: true,
	}, props.Flags())

	badge, ok := props.AddonBefore.(*components.Badge)
	require.True(t, ok)
	assert.Equal(t, "https://", badge.Text())

	button, ok := props.AddonAfter.(*components.Button)
	require.True(t, ok)
	assert.Equal(t, ".com", button.Label())

	assert.Equal(t, "example", props.Attrs.Placeholder)
	assert.Equal(t, "charm", props.Attrs.Value)
	assert.Equal(t, 40, props.Attrs.CharLimit)
	assert.Equal(t, 24, props.Attrs.Width)
	assert.Equal(t, textinput.EchoPassword, props.Attrs.EchoMode)
	assert.Equal(t, []string{"charm", "bubbles"}, props.Attrs.Suggestions)
	assert.True(t, props.Attrs.ShowSuggestions)
	assert.Nil(t, props.Attrs.Validate)
}

func TestFieldConfigPropsWithoutAddons(t *testing.T) {
	t.Parallel()

	props, err := FieldConfig{Name: "plain"}.Props()
	require.NoError(t, err)

	assert.Nil(t, props.AddonBefore)
	assert.Nil(t, props.AddonAfter)
	assert.Equal(t, components.FieldFlags{}, props.Flags())
	assert.Equal(t, textinput.EchoNormal, props.Attrs.EchoMode)
	assert.False(t, props.Attrs.ShowSuggestions)
}

func TestFieldConfigValidateFunc(t *testing.T) {
	t.Parallel()

	props, err := FieldConfig{Name: "zip", Pattern: `^\d{5}$`, Required: true}.Props()
	require.NoError(t, err)
	require.NotNil(t, props.Attrs.Validate)

	assert.ErrorIs(t, props.Attrs.Validate(""), ErrRequired)
	assert.Error(t, props.Attrs.Validate("abc"))
	assert.NoError(t, props.Attrs.Validate("12345"))

	optional, err := FieldConfig{Name: "zip", Pattern: `^\d{5}$`}.Props()
	require.NoError(t, err)
	assert.NoError(t, optional.Attrs.Validate(""))
}

func TestFieldConfigPropsErrors(t *testing.T) {
	t.Parallel()

	_, err := FieldConfig{Name: "a", Echo: "stars"}.Props()
	require.ErrorContains(t, err, "field error [a]")

	_, err = FieldConfig{Name: "b", Pattern: "(["}.Props()
	require.ErrorContains(t, err, "compile pattern")
}

func TestFormFieldProps(t *testing.T) {
	t.Parallel()

	form := &Form{Fields: []FieldConfig{{Name: "first", Icon: "icon-user"}, {Name: "second", Loading: true}}}

	props, err := form.FieldProps()
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, "icon-user", props[0].Icon)
	assert.True(t, props[1].Loading)

	field, ok := form.Field("second")
	require.True(t, ok)
	assert.True(t, field.Loading)

	_, ok = form.Field("third")
	assert.False(t, ok)
}

func TestFieldConfigPropsRenderAsField(t *testing.T) {
	t.Parallel()

	props, err := FieldConfig{Name: "q", Icon: "icon-search", Value: "bubbles"}.Props()
	require.NoError(t, err)

	view := components.NewField(props).View()
	assert.Contains(t, view, "⌕")
	assert.Contains(t, view, "bubbles")
}
