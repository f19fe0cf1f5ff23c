package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Form is a YAML document describing a theme and the fields rendered with it.
type Form struct {
	Title  string        `yaml:"title,omitempty" validate:"omitempty,max=80"`
	Theme  ThemeConfig   `yaml:"theme,omitempty"`
	Fields []FieldConfig `yaml:"fields" validate:"required,min=1,unique=Name,dive"`
}

// ThemeConfig customises one of the built-in themes.
type ThemeConfig struct {
	Name       string            `yaml:"name,omitempty" validate:"omitempty,field_name"`
	Base       string            `yaml:"base,omitempty" validate:"omitempty,oneof=default light dark"`
	Mode       string            `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark auto"`
	Background string            `yaml:"background,omitempty" validate:"omitempty,color_hex"`
	Border     string            `yaml:"border,omitempty" validate:"omitempty,color_hex"`
	Error      string            `yaml:"error,omitempty" validate:"omitempty,color_hex"`
	Icons      map[string]string `yaml:"icons,omitempty" validate:"omitempty,dive,keys,icon_class,endkeys,required"`
	Field      FieldTokensConfig `yaml:"field,omitempty"`
}

// Customised reports whether the section changes anything beyond picking a base.
func (t ThemeConfig) Customised() bool {
	return t.Mode != "" || t.Background != "" || t.Border != "" || t.Error != "" ||
		len(t.Icons) > 0 || t.Field != (FieldTokensConfig{})
}

// FieldTokensConfig overrides field sizing. Nil leaves the base theme's value.
type FieldTokensConfig struct {
	SlotPadding         *int `yaml:"slot_padding,omitempty" validate:"omitempty,min=0,max=4"`
	MarginBottom        *int `yaml:"margin_bottom,omitempty" validate:"omitempty,min=0,max=8"`
	InvalidMarginBottom *int `yaml:"invalid_margin_bottom,omitempty" validate:"omitempty,min=0,max=8"`
	IconWidth           *int `yaml:"icon_width,omitempty" validate:"omitempty,min=1,max=8"`
	MinInputWidth       *int `yaml:"min_input_width,omitempty" validate:"omitempty,min=1,max=256"`
}

// FieldConfig describes one field of a form.
type FieldConfig struct {
	Name        string   `yaml:"name" validate:"required,field_name"`
	Placeholder string   `yaml:"placeholder,omitempty" validate:"omitempty,max=120"`
	Value       string   `yaml:"value,omitempty"`
	Icon        string   `yaml:"icon,omitempty" validate:"omitempty,icon_class"`
	Loading     bool     `yaml:"loading,omitempty"`
	Invalid     bool     `yaml:"invalid,omitempty"`
	AddonBefore string   `yaml:"addon_before,omitempty" validate:"omitempty,max=40"`
	AddonAfter  string   `yaml:"addon_after,omitempty" validate:"omitempty,max=40"`
	Echo        string   `yaml:"echo,omitempty" validate:"omitempty,oneof=normal password none"`
	CharLimit   int      `yaml:"char_limit,omitempty" validate:"omitempty,min=1,max=4096"`
	Width       int      `yaml:"width,omitempty" validate:"omitempty,min=1,max=512"`
	Pattern     string   `yaml:"pattern,omitempty" validate:"omitempty,regexp"`
	Required    bool     `yaml:"required,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty" validate:"omitempty,dive,required"`
}

// UnmarshalYAML accepts a bare string as shorthand for a field with only a name.
func (f *FieldConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*f = FieldConfig{Name: strings.TrimSpace(value.Value)}
		return nil
	}

	type rawField FieldConfig
	var temp rawField
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*f = FieldConfig(temp)
	return nil
}

// FieldNames lists field names in document order.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}
