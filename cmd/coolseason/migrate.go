package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/db"
	"github.com/Simplici0/coolseason/internal/migrations"
)

func migrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := db.Open(a.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			a.db = conn

			if err := migrations.Up(conn); err != nil {
				return fmt.Errorf("run database migrations: %w", err)
			}
			version, err := migrations.Version(conn)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "database %s at schema version %d\n", a.cfg.DBPath, version)
			return nil
		},
	}
}
