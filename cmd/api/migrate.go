package main

import (
	"rcp_tracker/internal/infrastructure/storage"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the storage schema",
		Long: `Create the schema of the configured storage backend.

sqlite:   tables and partial unique indexes in storage.sqlite_path
dynamodb: tasks, interval logs, active locks, audit and variants tables`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			return storage.Migrate(cmd.Context(), cfg.Storage, logger)
		},
	}
}
