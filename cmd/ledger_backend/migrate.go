package main

import (
	"log/slog"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/platform/config"
	"github.com/Dev-Icaro/MyCashAPI-sub000/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return runMigrations(cfg, logger)
		},
	}
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	dsn := cfg.DatabaseURL
	if cfg.DBDriver == config.DriverSQLite {
		dsn = cfg.SQLitePath
	}

	logger.Info("Running database migrations...", slog.String("driver", cfg.DBDriver))
	if err := database.RunMigrations(cfg.DBDriver, dsn); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Database migrations applied successfully.")
	return nil
}
