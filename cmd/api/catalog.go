package main

import (
	"fmt"

	"rcp_tracker/internal/catalog"
	"rcp_tracker/internal/infrastructure/storage"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the variant catalog read model",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "import [file]",
		Short: "Import variants and their services from a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			variants, err := catalog.Load(appFs, args[0])
			if err != nil {
				return err
			}

			stores, err := storage.Open(cmd.Context(), cfg.Storage, logger)
			if err != nil {
				return err
			}
			defer stores.Close()

			n, err := catalog.Import(cmd.Context(), stores.Variants, variants)
			if err != nil {
				return err
			}
			logger.Info("catalog imported", "file", args[0], "variants", n)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d variants\n", n)
			return nil
		},
	})
	return cmd
}
