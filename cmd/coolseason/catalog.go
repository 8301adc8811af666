package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/catalog"
	"github.com/Simplici0/coolseason/internal/estimate"
	"github.com/Simplici0/coolseason/internal/pricing"
)

func catalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage add-on and system templates",
	}

	cmd.AddCommand(catalogListCmd(a))
	cmd.AddCommand(catalogAddCmd(a))
	cmd.AddCommand(catalogToggleCmd(a, "enable", true))
	cmd.AddCommand(catalogToggleCmd(a, "disable", false))
	cmd.AddCommand(catalogDeleteCmd(a))
	cmd.AddCommand(catalogSystemsCmd(a))

	return cmd
}

func (a *app) catalog() (*catalog.Store, error) {
	conn, err := a.database()
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(conn), nil
}

func catalogListCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List add-on templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.catalog()
			if err != nil {
				return err
			}

			templates, err := store.ListAddOnTemplates(cmd.Context(), !all)
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No add-on templates found. Use 'coolseason seed' or 'coolseason catalog add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tENABLED\tFLAGS")
			for _, t := range templates {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", t.ID, t.Name, pricing.FormatCurrency(t.DefaultPrice), t.Enabled, templateFlags(t))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include disabled templates")
	return cmd
}

func templateFlags(t estimate.AddOnTemplate) string {
	var flags []string
	if t.FreeWhenTierIsBest {
		flags = append(flags, "free-with-best")
	}
	if t.UseQuantity {
		flags = append(flags, "quantity")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

func catalogAddCmd(a *app) *cobra.Command {
	var (
		tmpl  estimate.AddOnTemplate
		price string
		off   bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an add-on template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if tmpl.DefaultPrice, err = parseNonNegativeFloat(price, "price"); err != nil {
				return err
			}
			tmpl.Enabled = !off

			store, err := a.catalog()
			if err != nil {
				return err
			}
			created, err := store.CreateAddOnTemplate(cmd.Context(), tmpl)
			if err != nil {
				return err
			}
			slog.Info("addon template created", "id", created.ID, "name", created.Name)

			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&tmpl.Name, "name", "", "template name")
	cmd.Flags().StringVar(&tmpl.Description, "description", "", "template description")
	cmd.Flags().StringVar(&price, "price", "0", "default price")
	cmd.Flags().BoolVar(&tmpl.FreeWhenTierIsBest, "free-with-best", false, "show as free when the Best tier is chosen")
	cmd.Flags().BoolVar(&tmpl.UseQuantity, "use-quantity", false, "track a quantity on instances")
	cmd.Flags().BoolVar(&off, "disabled", false, "create the template disabled")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func catalogToggleCmd(a *app, use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " an add-on template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.catalog()
			if err != nil {
				return err
			}
			if err := store.SetAddOnTemplateEnabled(cmd.Context(), args[0], enabled); err != nil {
				return fmt.Errorf("%s %s: %w", use, args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sd %s\n", use, args[0])
			return nil
		},
	}
}

func catalogDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an add-on template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.catalog()
			if err != nil {
				return err
			}
			if err := store.DeleteAddOnTemplate(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func catalogSystemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "List system templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.catalog()
			if err != nil {
				return err
			}

			systems, err := store.ListSystemTemplates(cmd.Context())
			if err != nil {
				return err
			}
			if len(systems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No system templates found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEQUIPMENT\tCAPACITY")
			for _, sys := range systems {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sys.ID, sys.Name, sys.EquipmentType, pricing.FormatTonnage(sys.Tonnage))
			}
			return w.Flush()
		},
	}
}
