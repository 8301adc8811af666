package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Simplici0/coolseason/internal/estimate"
	"github.com/Simplici0/coolseason/internal/settings"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

func strPtr(s string) *string { return &s }

// DefaultAddOnTemplates are offered on a fresh catalog.
func DefaultAddOnTemplates() []estimate.AddOnTemplate {
	return []estimate.AddOnTemplate{
		{Name: "Surge Protector", Description: "Condenser surge protection", DefaultPrice: 185, Enabled: true, FreeWhenTierIsBest: true},
		{Name: "Smart Thermostat", Description: "Wi-Fi programmable thermostat", DefaultPrice: 325, Enabled: true},
		{Name: "Return Duct Sealing", Description: "Seal return plenum and joints", DefaultPrice: 95, Enabled: true, UseQuantity: true},
	}
}

// DefaultSystemTemplates are the tiered systems a fresh catalog starts with.
func DefaultSystemTemplates() []estimate.System {
	return []estimate.System{
		{
			Name:          "3 Ton AC + Furnace",
			Tonnage:       3,
			EquipmentType: estimate.EquipmentACFurnace,
			Options: []estimate.Option{
				{Tier: estimate.TierGood, ShowToCustomer: true, SEER: 14, Stage: "Single", Tonnage: 3, Price: 6800, ImageName: strPtr("snow")},
				{Tier: estimate.TierBetter, ShowToCustomer: true, SEER: 16, Stage: "Two-Stage", Tonnage: 3, Price: 8400, ImageName: strPtr("wind")},
				{Tier: estimate.TierBest, ShowToCustomer: true, SEER: 18, Stage: "Variable Speed", Tonnage: 3, Price: 10400, ImageName: strPtr("sun.max")},
			},
		},
		{
			Name:          "3 Ton Heat Pump + Air Handler",
			Tonnage:       3,
			EquipmentType: estimate.EquipmentHeatPumpAirHandler,
			Options: []estimate.Option{
				{Tier: estimate.TierGood, ShowToCustomer: true, SEER: 15, Stage: "Single", Tonnage: 3, Price: 7900},
				{Tier: estimate.TierBetter, ShowToCustomer: true, SEER: 17, Stage: "Two-Stage", Tonnage: 3, Price: 9600},
				{Tier: estimate.TierBest, ShowToCustomer: true, SEER: 20, Stage: "Variable Speed", Tonnage: 3, Price: 12300, Advantages: []string{"Quietest operation", "Lowest energy use"}},
			},
		},
	}
}

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for _, tmpl := range DefaultAddOnTemplates() {
		if err := ensureAddOnTemplate(ctx, tx, tmpl, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	for _, sys := range DefaultSystemTemplates() {
		if err := ensureSystemTemplate(ctx, tx, sys, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	if err := ensureSettings(ctx, tx, settings.DefaultPayment().Values(), &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureAddOnTemplate(ctx context.Context, tx *sql.Tx, tmpl estimate.AddOnTemplate, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM addon_templates WHERE name = ? LIMIT 1)`, tmpl.Name).Scan(&exists); err != nil {
		return fmt.Errorf("check addon template %q existence: %w", tmpl.Name, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO addon_templates (id, name, description, default_price, enabled, free_when_tier_is_best, use_quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, estimate.NewID(), tmpl.Name, tmpl.Description, tmpl.DefaultPrice, tmpl.Enabled, tmpl.FreeWhenTierIsBest, tmpl.UseQuantity); err != nil {
		return fmt.Errorf("insert addon template %q: %w", tmpl.Name, err)
	}
	stats.Inserts++
	return nil
}

func ensureSystemTemplate(ctx context.Context, tx *sql.Tx, sys estimate.System, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM system_templates WHERE name = ? LIMIT 1)`, sys.Name).Scan(&exists); err != nil {
		return fmt.Errorf("check system template %q existence: %w", sys.Name, err)
	}
	if exists {
		return nil
	}

	templateID := estimate.NewID()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO system_templates (id, name, tonnage, equipment_type)
		VALUES (?, ?, ?, ?)
	`, templateID, sys.Name, sys.Tonnage, string(sys.EquipmentType)); err != nil {
		return fmt.Errorf("insert system template %q: %w", sys.Name, err)
	}

	for i, opt := range sys.Options {
		advantages := opt.Advantages
		if advantages == nil {
			advantages = []string{}
		}
		encoded, err := json.Marshal(advantages)
		if err != nil {
			return fmt.Errorf("encode advantages: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO system_template_options (
				id,
				system_template_id,
				position,
				tier,
				show_to_customer,
				seer,
				stage,
				tonnage,
				price,
				image_name,
				advantages_json
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			estimate.NewID(),
			templateID,
			i,
			string(opt.Tier),
			opt.ShowToCustomer,
			opt.SEER,
			opt.Stage,
			opt.Tonnage,
			opt.Price,
			opt.ImageName,
			string(encoded),
		); err != nil {
			return fmt.Errorf("insert %s option for %q: %w", opt.Tier, sys.Name, err)
		}
	}
	stats.Inserts++
	return nil
}

func ensureSettings(ctx context.Context, tx *sql.Tx, values map[string]string, stats *Stats) error {
	for key, value := range values {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value)
			VALUES (?, ?)
			ON CONFLICT(key) DO NOTHING
		`, key, value)
		if err != nil {
			return fmt.Errorf("insert default setting %s: %w", key, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected for setting %s: %w", key, err)
		}
		stats.Inserts += int(affected)
	}
	return nil
}
