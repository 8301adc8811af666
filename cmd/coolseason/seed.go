package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/seed"
)

func seedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert default templates and payment settings",
		Long: `Insert the default add-on templates, Good/Better/Best system templates and
payment settings. Existing rows are left untouched, so the command can be run
repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := a.database()
			if err != nil {
				return err
			}

			stats, err := seed.Run(cmd.Context(), conn)
			if err != nil {
				return err
			}
			slog.Info("seed complete", "inserts", stats.Inserts, "updates", stats.Updates)

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rows\n", stats.Inserts)
			return nil
		},
	}
}
