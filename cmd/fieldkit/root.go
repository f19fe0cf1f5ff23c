package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
)

type rootFlags struct {
	logLevel string
	logJSON  bool
	theme    string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fieldkit",
		Short:         "fieldkit renders themed terminal text fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: !flags.logJSON,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			flags.log = log.WithFields(map[string]any{"command": cmd.Name()})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Built-in theme (default, light, dark); overrides the form's theme")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newIconsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
