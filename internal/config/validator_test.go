package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	fieldkiterrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestValidateForm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		form      *Form
		wantField string
	}{
		{
			name: "valid form",
			form: &Form{
				Theme: ThemeConfig{Base: "light", Mode: "auto", Background: "#fff"},
				Fields: []FieldConfig{
					{Name: "email", Icon: "icon-mail", Echo: "normal", Pattern: `^.+@.+$`},
					{Name: "pin", Echo: "password", CharLimit: 4},
				},
			},
		},
		{
			name:      "nil form",
			form:      nil,
			wantField: "form",
		},
		{
			name:      "unknown base theme",
			form:      &Form{Theme: ThemeConfig{Base: "solarized"}, Fields: []FieldConfig{{Name: "a"}}},
			wantField: "form.theme.base",
		},
		{
			name:      "unknown mode",
			form:      &Form{Theme: ThemeConfig{Mode: "sepia"}, Fields: []FieldConfig{{Name: "a"}}},
			wantField: "form.theme.mode",
		},
		{
			name:      "bad background colour",
			form:      &Form{Theme: ThemeConfig{Background: "navy"}, Fields: []FieldConfig{{Name: "a"}}},
			wantField: "form.theme.background",
		},
		{
			name:      "unknown echo mode",
			form:      &Form{Fields: []FieldConfig{{Name: "a", Echo: "stars"}}},
			wantField: "form.fields[0].echo",
		},
		{
			name:      "broken pattern",
			form:      &Form{Fields: []FieldConfig{{Name: "a", Pattern: "(["}}},
			wantField: "form.fields[0].pattern",
		},
		{
			name:      "addon too long",
			form:      &Form{Fields: []FieldConfig{{Name: "a", AddonBefore: "this addon text is far too long to fit beside a field"}}},
			wantField: "form.fields[0].addon_before",
		},
		{
			name:      "negative margin",
			form:      &Form{Theme: ThemeConfig{Field: FieldTokensConfig{MarginBottom: intPtr(-1)}}, Fields: []FieldConfig{{Name: "a"}}},
			wantField: "form.theme.field.margin_bottom",
		},
		{
			name: "invalid margin not tighter",
			form: &Form{
				Theme:  ThemeConfig{Field: FieldTokensConfig{MarginBottom: intPtr(1), InvalidMarginBottom: intPtr(2)}},
				Fields: []FieldConfig{{Name: "a"}},
			},
			wantField: "theme.field.invalid_margin_bottom",
		},
		{
			name:      "pattern on hidden input",
			form:      &Form{Fields: []FieldConfig{{Name: "secret", Echo: "none", Pattern: "^x$"}}},
			wantField: "fields[0].pattern",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateForm(tc.form)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *fieldkiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateField(FieldConfig{Name: "query", Width: 30}))

	err := ValidateField(FieldConfig{Name: "query", Width: 1000})
	var validationErr *fieldkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "field_config.width", validationErr.Field)
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "form", snakeCase("Form"))
	require.Equal(t, "addon_before", snakeCase("AddonBefore"))
	require.Equal(t, "fields[2]", snakeCase("Fields[2]"))
	require.Equal(t, "invalid_margin_bottom", snakeCase("InvalidMarginBottom"))
}
