package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacobsee/calwidget/internal/calendar"
)

func newExtensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List the widget extensions compiled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := registerExtensions(calendar.DefaultRegistry); err != nil {
				return err
			}
			for _, name := range calendar.DefaultRegistry.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
