package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
	fieldkiterrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

// ErrRequired is reported by required fields left empty.
var ErrRequired = errors.New("value is required")

var echoModes = map[string]textinput.EchoMode{
	"":         textinput.EchoNormal,
	"normal":   textinput.EchoNormal,
	"password": textinput.EchoPassword,
	"none":     textinput.EchoNone,
}

// Props maps the field to component props. A leading addon becomes a badge
// and a trailing addon a button; both are restyled by the field anyway.
func (f FieldConfig) Props() (components.FieldProps, error) {
	echo, ok := echoModes[f.Echo]
	if !ok {
		return components.FieldProps{}, fieldkiterrors.NewFieldError(f.Name, fmt.Errorf("unknown echo mode %q", f.Echo))
	}

	validate, err := f.validateFunc()
	if err != nil {
		return components.FieldProps{}, fieldkiterrors.NewFieldError(f.Name, err)
	}

	props := components.FieldProps{
		Invalid: f.Invalid,
		Icon:    f.Icon,
		Loading: f.Loading,
		Attrs: components.FieldAttrs{
			Placeholder:     f.Placeholder,
			Value:           f.Value,
			CharLimit:       f.CharLimit,
			Width:           f.Width,
			EchoMode:        echo,
			Validate:        validate,
			Suggestions:     lo.Uniq(lo.Compact(f.Suggestions)),
			ShowSuggestions: len(f.Suggestions) > 0,
		},
	}
	if f.AddonBefore != "" {
		props.AddonBefore = components.NewBadge(f.AddonBefore)
	}
	if f.AddonAfter != "" {
		props.AddonAfter = components.NewButton(f.AddonAfter)
	}
	return props, nil
}

func (f FieldConfig) validateFunc() (textinput.ValidateFunc, error) {
	if f.Pattern == "" && !f.Required {
		return nil, nil
	}

	var pattern *regexp.Regexp
	if f.Pattern != "" {
		compiled, err := regexp.Compile(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern: %w", err)
		}
		pattern = compiled
	}

	return func(value string) error {
		if value == "" {
			return lo.Ternary(f.Required, ErrRequired, nil)
		}
		if pattern != nil && !pattern.MatchString(value) {
			return fmt.Errorf("%q does not match %s", value, f.Pattern)
		}
		return nil
	}, nil
}

// FieldProps maps every field of the form, in order.
func (f *Form) FieldProps() ([]components.FieldProps, error) {
	props := make([]components.FieldProps, 0, len(f.Fields))
	for _, field := range f.Fields {
		p, err := field.Props()
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

// Field returns the named field.
func (f *Form) Field(name string) (FieldConfig, bool) {
	return lo.Find(f.Fields, func(field FieldConfig) bool {
		return field.Name == name
	})
}
