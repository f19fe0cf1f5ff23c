package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

type renderOptions struct {
	FormPath    string
	Icon        string
	Loading     bool
	Invalid     bool
	Before      string
	After       string
	Placeholder string
	Value       string
	Password    bool
	Width       int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a static rendering of a field or a whole form",
		Example: `  fieldkit render --icon icon-search --placeholder Search
  fieldkit render --before https:// --after Go --invalid
  fieldkit render --form form.yaml --theme dark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.FormPath != "" {
				return renderForm(cmd, root, opts)
			}
			return renderField(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.FormPath, "form", "f", "", "Render every field of a form file")
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "Icon-font class for the prefix slot")
	cmd.Flags().BoolVar(&opts.Loading, "loading", false, "Show the loading spinner")
	cmd.Flags().BoolVar(&opts.Invalid, "invalid", false, "Render in the invalid state")
	cmd.Flags().StringVar(&opts.Before, "before", "", "Leading addon text")
	cmd.Flags().StringVar(&opts.After, "after", "", "Trailing addon text")
	cmd.Flags().StringVar(&opts.Placeholder, "placeholder", "", "Placeholder text")
	cmd.Flags().StringVar(&opts.Value, "value", "", "Initial value")
	cmd.Flags().BoolVar(&opts.Password, "password", false, "Mask the value")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Maximum width of the rendering")

	return cmd
}

func (o renderOptions) props() components.FieldProps {
	props := components.FieldProps{
		Invalid: o.Invalid,
		Icon:    o.Icon,
		Loading: o.Loading,
		Attrs: components.FieldAttrs{
			Placeholder: o.Placeholder,
			Value:       o.Value,
		},
	}
	if o.Password {
		props.Attrs.EchoMode = textinput.EchoPassword
	}
	if o.Before != "" {
		props.AddonBefore = components.NewBadge(o.Before)
	}
	if o.After != "" {
		props.AddonAfter = components.NewButton(o.After)
	}
	return props
}

func renderField(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	theme, err := resolveTheme(root.theme, nil)
	if err != nil {
		return err
	}

	ctx := components.DefaultContext().WithTheme(theme)
	if opts.Width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(opts.Width))
	}

	field := components.NewField(opts.props())
	root.log.Debug("render field", "theme", theme.Name, "flags", fmt.Sprintf("%+v", field.Props().Flags()))

	fmt.Fprintln(cmd.OutOrStdout(), field.ViewWithContext(ctx))
	return nil
}

func renderForm(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	form, err := loadForm(opts.FormPath)
	if err != nil {
		return err
	}

	model, err := buildFormModel(root, form, true)
	if err != nil {
		return err
	}

	var view tea.Model = model
	if opts.Width > 0 {
		view, _ = model.Update(tea.WindowSizeMsg{Width: opts.Width})
	}

	root.log.Info("rendered form", "path", opts.FormPath, "fields", model.Len())
	fmt.Fprintln(cmd.OutOrStdout(), view.View())
	return nil
}
