package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	fieldkiterrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

func TestParseForm(t *testing.T) {
	t.Parallel()

	validYAML := `title: Sign up
theme:
  base: dark
  border: "#334155"
  icons:
    icon-rocket: "^"
  field:
    margin_bottom: 2
    invalid_margin_bottom: 1
fields:
  - name: website
    placeholder: example
    icon: icon-link
    addon_before: "https://"
    addon_after: ".com"
  - name: password
    echo: password
    char_limit: 64
  - notes
`

	invalidYAML := `fields:
  - name: query
    width: [1, 2]
`

	unknownKey := `theme:
  colour: red
fields:
  - name: query
`

	missingFields := `title: Empty
`

	duplicateNames := `fields:
  - name: query
  - name: query
`

	badIcon := `fields:
  - name: query
    icon: search
`

	badMargins := `theme:
  field:
    margin_bottom: 1
    invalid_margin_bottom: 1
fields:
  - name: query
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, form *Form, err error)
	}{
		{
			name:     "valid form is parsed",
			contents: validYAML,
			assert: func(t *testing.T, form *Form, err error) {
				require.NoError(t, err)
				require.NotNil(t, form)
				require.Equal(t, "Sign up", form.Title)
				require.Equal(t, []string{"website", "password", "notes"}, form.FieldNames())
				require.Equal(t, "dark", form.Theme.Base)
				require.Equal(t, "^", form.Theme.Icons["icon-rocket"])
				require.Equal(t, 2, *form.Theme.Field.MarginBottom)
				require.Nil(t, form.Theme.Field.IconWidth)
				require.Equal(t, "https://", form.Fields[0].AddonBefore)
				require.Equal(t, 64, form.Fields[1].CharLimit)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, form *Form, err error) {
				require.Nil(t, form)
				var parseErr *fieldkiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, form *Form, err error) {
				var parseErr *fieldkiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "missing fields returns validation error",
			contents: missingFields,
			assert: func(t *testing.T, form *Form, err error) {
				var validationErr *fieldkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "form.fields", validationErr.Field)
			},
		},
		{
			name:     "field names must be unique",
			contents: duplicateNames,
			assert: func(t *testing.T, form *Form, err error) {
				var validationErr *fieldkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "unique")
			},
		},
		{
			name:     "icons must be icon-font classes",
			contents: badIcon,
			assert: func(t *testing.T, form *Form, err error) {
				var validationErr *fieldkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "form.fields[0].icon", validationErr.Field)
				require.Contains(t, validationErr.Message, "icon_class")
			},
		},
		{
			name:     "invalid margin must stay below the normal margin",
			contents: badMargins,
			assert: func(t *testing.T, form *Form, err error) {
				var validationErr *fieldkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme.field.invalid_margin_bottom", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempForm(t, tc.contents)
			form, err := ParseForm(path)
			tc.assert(t, form, err)
		})
	}
}

func TestParseFormMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := ParseForm(path)

	var parseErr *fieldkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeFormEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := DecodeForm("inline", []byte(""))

	var parseErr *fieldkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.Message, "empty")
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 7, extractLine(errString("yaml: line 7: did not find expected key")))
	require.Equal(t, 0, extractLine(errString("no position")))
}

type errString string

func (e errString) Error() string { return string(e) }

func writeTempForm(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
