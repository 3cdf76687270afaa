package main

import (
	"fmt"
	"os"

	"rcp_tracker/internal/config"
	"rcp_tracker/internal/infrastructure/logging"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is swapped for an in-memory fs in tests.
var appFs = afero.NewOsFs()

func loadRuntime(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.FromEnvironment(appFs, path, os.Getenv)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("configure logging: %w", err)
	}
	return cfg, logger, nil
}
