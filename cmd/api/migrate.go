package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and rebuild the learning_stats view",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, closeDB, err := setup()
			if err != nil {
				return err
			}
			defer closeDB()
			slog.Info("migration complete")
			return nil
		},
	}
}
