package main

import (
	"github.com/spf13/cobra"

	"github.com/jacobsee/calwidget/internal/auth"
	"github.com/jacobsee/calwidget/internal/calendar"
	"github.com/jacobsee/calwidget/internal/logging"
	"github.com/jacobsee/calwidget/internal/server"
)

func newServeCmd(configPath *string) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build all configured calendars and serve their options",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}

			calManager := calendar.NewManager(calendar.DefaultRegistry, calendar.NewMetrics(), logger)
			if err := calManager.Load(cfg.Definitions()); err != nil {
				if strict {
					return err
				}
				logger.Warn("some calendars could not be built", logging.Err(err))
			}

			authenticator := auth.NewAuthenticator(cfg.Auth.Method, cfg.Auth.APIKey)
			srv := server.New(calManager, authenticator, logger, cfg.Server.Host, cfg.Server.Port)
			return srv.Start()
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit if any calendar fails to build")

	return cmd
}
