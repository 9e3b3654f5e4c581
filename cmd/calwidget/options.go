package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacobsee/calwidget/internal/calendar"
)

func newOptionsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "options NAME",
		Short: "Print the client options of a configured calendar as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}

			calCfg, ok := cfg.Find(args[0])
			if !ok {
				return fmt.Errorf("calendar %s not found", args[0])
			}

			calManager := calendar.NewManager(calendar.DefaultRegistry, nil, logger)
			if err := calManager.Add(calCfg.Definition()); err != nil {
				return err
			}

			widget, err := calManager.Get(calCfg.Name)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(widget.Options())
		},
	}
}
