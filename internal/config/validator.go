package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	fieldkiterrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

// ValidateForm performs schema and cross-field validation on a form.
func ValidateForm(form *Form) error {
	if form == nil {
		return fieldkiterrors.NewValidationError("form", "form is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(form); err != nil {
		return convertValidationError(err)
	}

	tokens := form.Theme.Field
	if tokens.MarginBottom != nil && tokens.InvalidMarginBottom != nil &&
		*tokens.InvalidMarginBottom >= *tokens.MarginBottom {
		return fieldkiterrors.NewValidationError(
			"theme.field.invalid_margin_bottom",
			fmt.Sprintf("must be less than margin_bottom (%d)", *tokens.MarginBottom),
			nil,
		)
	}

	for i, field := range form.Fields {
		if field.Echo == "none" && field.Pattern != "" {
			return fieldkiterrors.NewValidationError(fieldForField(i, "pattern"), "cannot validate a field whose input is hidden", nil)
		}
	}

	return nil
}

// ValidateField validates a single field independent of the rest of the form.
func ValidateField(field FieldConfig) error {
	if err := validatorInstance().Struct(field); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fieldkiterrors.NewValidationError(field, msg, err)
	}

	return fieldkiterrors.NewValidationError("form", err.Error(), err)
}

// yamlishFieldName turns Form.Fields[1].AddonBefore into form.fields[1].addon_before.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForField(index int, field string) string {
	return fmt.Sprintf("fields[%d].%s", index, field)
}
