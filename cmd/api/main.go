package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/linskybing/civictrack/internal/config"
	"github.com/linskybing/civictrack/internal/config/db"
	"github.com/linskybing/civictrack/internal/migrations"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const programName = "civictrack"

var (
	globalFlags = struct {
		debug bool
	}{}
	cfg *config.Config
)

// commonRun installs the JSON logger. --debug overrides LOG_LEVEL.
func commonRun() *slog.Logger {
	level := cfg.SlogLevel()
	if globalFlags.debug {
		level = slog.LevelDebug
		cfg.LogLevel = "debug"
	}
	logger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: globalFlags.debug,
			Level:     level,
		}),
	).With("component", programName)
	slog.SetDefault(logger)
	return logger
}

// openDB connects and brings the schema up to date.
func openDB() (*gorm.DB, error) {
	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(conn); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return conn, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Civic issue reporting backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd)
		},
	}

	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		commonRun()
		return nil
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())
	rootCmd.AddCommand(seedCommand())
	rootCmd.AddCommand(overdueCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
