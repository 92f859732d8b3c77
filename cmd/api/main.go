package main

import (
	"fmt"
	"log/slog"
	"os"

	config "github.com/anjiri1684/error_paper/configs"
	"github.com/anjiri1684/error_paper/database"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCommand := cobra.Command{
		Use:           "api",
		Short:         "Error paper practice API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file path")

	rootCommand.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSweepCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads settings, installs the default logger and opens a migrated
// store.
func setup() (*config.Settings, *database.Store, func(), error) {
	settings, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: settings.SlogLevel(),
	})))

	db, err := database.Connect(settings.DBDriver, settings.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close database", "error", err)
			}
		}
	}
	if err := database.Migrate(db); err != nil {
		closeDB()
		return nil, nil, nil, err
	}
	return settings, database.NewStore(db), closeDB, nil
}
