package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/tui"
)

type demoOptions struct {
	FormPath       string
	NonInteractive bool
}

var demoProgramRunner = runDemoProgram

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive form",
		Long: `Run an interactive form built from a form file, the XDG form
(fieldkit/form.yaml) or a built-in sample. When stdout is not a terminal a
single frame is printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				opts.NonInteractive = true
			}
			return runDemo(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.FormPath, "form", "f", "", "Path to form file")
	cmd.Flags().BoolVar(&opts.NonInteractive, "static", false, "Print one frame and exit")

	return cmd
}

func runDemo(cmd *cobra.Command, root *rootFlags, opts demoOptions) error {
	form, err := loadForm(opts.FormPath)
	if err != nil {
		return err
	}
	if form == nil {
		root.log.Debug("no form file found, using sample form")
		form = sampleForm()
	}

	model, err := buildFormModel(root, form, opts.NonInteractive)
	if err != nil {
		return err
	}

	if opts.NonInteractive {
		fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return nil
	}

	root.log.Info("starting demo", "fields", model.Len(), "theme", model.Theme().Name)
	final, err := demoProgramRunner(model)
	if err != nil {
		return fmt.Errorf("run demo: %w", err)
	}

	if final.Submitted() {
		for _, name := range form.FieldNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, final.Values()[name])
		}
	}
	return nil
}

func runDemoProgram(model tui.Model) (tui.Model, error) {
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return model, err
	}
	return final.(tui.Model), nil
}

func buildFormModel(root *rootFlags, form *config.Form, nonInteractive bool) (tui.Model, error) {
	if len(form.Fields) == 0 {
		return tui.Model{}, errNoFields
	}

	theme, err := resolveTheme(root.theme, form)
	if err != nil {
		return tui.Model{}, err
	}

	props, err := form.FieldProps()
	if err != nil {
		return tui.Model{}, err
	}

	specs := make([]tui.FieldSpec, 0, len(props))
	for i, p := range props {
		specs = append(specs, tui.FieldSpec{Name: form.Fields[i].Name, Props: p})
	}

	return tui.NewModel(tui.Options{
		Title:          form.Title,
		Fields:         specs,
		Theme:          theme,
		NonInteractive: nonInteractive,
		Logger:         root.log,
	}), nil
}

func sampleForm() *config.Form {
	return &config.Form{
		Title: "fieldkit",
		Fields: []config.FieldConfig{
			{Name: "search", Placeholder: "Search packages", Icon: "icon-search"},
			{Name: "website", Placeholder: "example", AddonBefore: "https://", AddonAfter: ".com", Icon: "icon-link"},
			{Name: "email", Placeholder: "you@example.com", Icon: "icon-mail", Pattern: `^[^@\s]+@[^@\s]+$`, Required: true},
			{Name: "password", Placeholder: "password", Icon: "icon-lock", Echo: "password", Required: true},
			{Name: "lookup", Placeholder: "Checking...", Loading: true},
		},
	}
}

