package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jacobsee/calwidget/internal/calendar"
	"github.com/jacobsee/calwidget/internal/config"
	"github.com/jacobsee/calwidget/internal/logging"

	// Extensions
	"github.com/jacobsee/calwidget/plugins/scheduler"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "calwidget",
		Short: "Builds and serves FullCalendar widget configurations",
		Long: `calwidget builds calendar widgets from a YAML configuration and serves
their client options over HTTP. Calendars that enable the scheduler need
the scheduler extension, which is registered at startup.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(`{{printf "calwidget version %s\n" .Version}}`)
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newOptionsCmd(&configPath))
	root.AddCommand(newExtensionsCmd())

	return root
}

// registerExtensions installs the compiled-in widget extensions
func registerExtensions(registry *calendar.Registry) error {
	registrations := map[string]func(*calendar.Registry) error{
		calendar.SchedulerExtension: scheduler.Register,
	}

	for name, register := range registrations {
		if _, exists := registry.Lookup(name); exists {
			continue
		}
		if err := register(registry); err != nil {
			return fmt.Errorf("failed to register extension %s: %w", name, err)
		}
	}
	return nil
}

// setup loads the configuration, creates the logger and registers extensions
func setup(cmd *cobra.Command, configPath string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, nil, err
	}

	if err := registerExtensions(calendar.DefaultRegistry); err != nil {
		return nil, nil, err
	}
	for _, name := range calendar.DefaultRegistry.List() {
		logger.Debug("registered extension", logging.Extension(name))
	}

	return cfg, logger, nil
}
