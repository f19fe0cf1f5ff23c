package main

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type iconsOptions struct {
	FormPath string
}

func newIconsCmd(root *rootFlags) *cobra.Command {
	opts := iconsOptions{}

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List the icon-font classes a theme knows",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := loadForm(opts.FormPath)
			if err != nil {
				return err
			}
			theme, err := resolveTheme(root.theme, form)
			if err != nil {
				return err
			}

			classes := lo.Keys(theme.Icons)
			slices.Sort(classes)
			width := lo.Max(lo.Map(classes, func(class string, _ int) int { return len(class) }))

			for _, class := range classes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, class, theme.Icons[class])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.FormPath, "form", "f", "", "Include icons defined by a form file")

	return cmd
}
