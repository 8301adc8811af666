package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/config"
	"github.com/Simplici0/coolseason/internal/db"
	"github.com/Simplici0/coolseason/internal/logging"
	"github.com/Simplici0/coolseason/internal/migrations"
	"github.com/Simplici0/coolseason/internal/settings"
)

// app carries the resolved configuration and the lazily opened database
// shared by every subcommand.
type app struct {
	cfg      config.Config
	dbPath   string
	logLevel string
	db       *sql.DB
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coolseason",
		Short: "HVAC proposal estimator",
		Long: `coolseason composes Good/Better/Best HVAC proposals from a template
catalog and prices them for cash, credit card or financing.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database path (default: DB_PATH)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(migrateCmd(a))
	cmd.AddCommand(seedCmd(a))
	cmd.AddCommand(catalogCmd(a))
	cmd.AddCommand(settingsCmd(a))
	cmd.AddCommand(quoteCmd(a))
	cmd.AddCommand(demoCmd(a))

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil {
		slog.Error("failed to close database", "error", closeErr)
	}
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	return nil
}

// database opens the configured database once. Development environments
// migrate on first use.
func (a *app) database() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	conn, err := db.Open(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if a.cfg.IsDev() {
		if err := migrations.Up(conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("run database migrations: %w", err)
		}
	}

	slog.Debug("database ready", "path", a.cfg.DBPath)
	a.db = conn
	return conn, nil
}

// settingsProvider resolves settings from the database first, then the
// config file and environment.
func (a *app) settingsProvider() (*settings.SQLStore, settings.Provider, error) {
	conn, err := a.database()
	if err != nil {
		return nil, nil, err
	}
	store := settings.NewSQLStore(conn)
	if a.cfg.Values == nil {
		return store, store, nil
	}
	return store, settings.Layered{store, settings.NewViperProvider(a.cfg.Values)}, nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
