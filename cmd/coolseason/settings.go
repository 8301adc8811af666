package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/pricing"
	"github.com/Simplici0/coolseason/internal/settings"
)

func settingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change payment settings",
	}

	cmd.AddCommand(settingsShowCmd(a))
	cmd.AddCommand(settingsSetCmd(a))

	return cmd
}

func settingsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective payment settings and stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, provider, err := a.settingsProvider()
			if err != nil {
				return err
			}

			payment, err := settings.LoadPayment(cmd.Context(), provider)
			if err != nil {
				return err
			}
			printPayment(cmd.OutOrStdout(), payment)

			stored, err := store.All(cmd.Context())
			if err != nil {
				return err
			}
			if len(stored) == 0 {
				return nil
			}

			keys := make([]string, 0, len(stored))
			for key := range stored {
				keys = append(keys, key)
			}
			slices.Sort(keys)

			fmt.Fprintln(cmd.OutOrStdout())
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE")
			for _, key := range keys {
				fmt.Fprintf(w, "%s\t%s\n", key, stored[key])
			}
			return w.Flush()
		},
	}
}

func settingsSetCmd(a *app) *cobra.Command {
	var flags paymentFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store payment settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := a.settingsProvider()
			if err != nil {
				return err
			}

			current, err := settings.LoadPayment(cmd.Context(), store)
			if err != nil {
				return err
			}
			updated, err := flags.apply(cmd, current)
			if err != nil {
				return err
			}
			if err := store.SavePayment(cmd.Context(), updated); err != nil {
				return err
			}
			slog.Info("payment settings saved", "payment_option", updated.Option, "term_months", updated.TermMonths)

			printPayment(cmd.OutOrStdout(), updated)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printPayment(out io.Writer, p settings.Payment) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Payment option:\t%s\n", p.Option.DisplayName())
	fmt.Fprintf(w, "Finance markup:\t%g%%\n", p.MarkupPercent)
	fmt.Fprintf(w, "Finance term:\t%s at %.2f%% APR\n", pricing.FormatMonths(p.TermMonths), pricing.RateForTerm(p.TermMonths))
	_ = w.Flush()
}
