package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Simplici0/coolseason/internal/estimate"
)

const tonnageTolerance = 0.001

// SystemTemplate is a stored, pre-priced system with one option per tier.
type SystemTemplate struct {
	ID     string
	System estimate.System
}

// SaveSystemTemplate inserts or replaces a system template and its options.
// Customer selection is never stored.
func (s *Store) SaveSystemTemplate(ctx context.Context, t SystemTemplate) (SystemTemplate, error) {
	name, err := requireName(t.System.Name)
	if err != nil {
		return SystemTemplate{}, err
	}
	if t.System.Tonnage <= 0 {
		return SystemTemplate{}, fmt.Errorf("%w: tonnage must be greater than 0", ErrInvalidTemplate)
	}
	if _, ok := estimate.ParseEquipmentType(string(t.System.EquipmentType)); !ok {
		return SystemTemplate{}, fmt.Errorf("%w: unknown equipment type %q", ErrInvalidTemplate, t.System.EquipmentType)
	}
	t.System.Name = name
	if t.ID == "" {
		t.ID = estimate.NewID()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SystemTemplate{}, fmt.Errorf("begin system template transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO system_templates (id, name, tonnage, furnace_btu, equipment_type)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			tonnage = excluded.tonnage,
			furnace_btu = excluded.furnace_btu,
			equipment_type = excluded.equipment_type,
			updated_at = CURRENT_TIMESTAMP
	`, t.ID, t.System.Name, t.System.Tonnage, nullFloat(t.System.FurnaceBTU), string(t.System.EquipmentType)); err != nil {
		return SystemTemplate{}, fmt.Errorf("upsert system template: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM system_template_options WHERE system_template_id = ?`, t.ID); err != nil {
		return SystemTemplate{}, fmt.Errorf("clear system template options: %w", err)
	}

	options := make([]estimate.Option, len(t.System.Options))
	for i, opt := range t.System.Options {
		if opt.ID == "" {
			opt.ID = estimate.NewID()
		}
		opt.SelectedByCustomer = false
		if opt.Advantages == nil {
			opt.Advantages = []string{}
		}
		advantages, err := json.Marshal(opt.Advantages)
		if err != nil {
			return SystemTemplate{}, fmt.Errorf("encode advantages: %w", err)
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
				outdoor_model,
				indoor_model,
				furnace_model,
				warranty_text,
				advantages_json
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			opt.ID,
			t.ID,
			i,
			string(opt.Tier),
			opt.ShowToCustomer,
			opt.SEER,
			opt.Stage,
			opt.Tonnage,
			opt.Price,
			nullString(opt.ImageName),
			nullString(opt.OutdoorModel),
			nullString(opt.IndoorModel),
			nullString(opt.FurnaceModel),
			nullString(opt.WarrantyText),
			string(advantages),
		); err != nil {
			return SystemTemplate{}, fmt.Errorf("insert system template option: %w", err)
		}
		options[i] = opt
	}

	if err := tx.Commit(); err != nil {
		return SystemTemplate{}, fmt.Errorf("commit system template: %w", err)
	}

	t.System.ID = t.ID
	t.System.Options = options
	return t, nil
}

// FindSystemTemplate returns the first template, by name, matching the
// tonnage and equipment type.
func (s *Store) FindSystemTemplate(ctx context.Context, tonnage float64, equipment estimate.EquipmentType) (estimate.System, bool, error) {
	var (
		sys        estimate.System
		furnaceBTU sql.NullFloat64
		eqType     string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, tonnage, furnace_btu, equipment_type
		FROM system_templates
		WHERE equipment_type = ? AND ABS(tonnage - ?) < ?
		ORDER BY name, id
		LIMIT 1
	`, string(equipment), tonnage, tonnageTolerance).Scan(&sys.ID, &sys.Name, &sys.Tonnage, &furnaceBTU, &eqType)
	if errors.Is(err, sql.ErrNoRows) {
		return estimate.System{}, false, nil
	}
	if err != nil {
		return estimate.System{}, false, fmt.Errorf("query system template: %w", err)
	}
	sys.EquipmentType = estimate.EquipmentType(eqType)
	sys.Enabled = true
	if furnaceBTU.Valid {
		btu := furnaceBTU.Float64
		sys.FurnaceBTU = &btu
	}

	sys.Options, err = s.listTemplateOptions(ctx, sys.ID)
	if err != nil {
		return estimate.System{}, false, err
	}
	return sys, true, nil
}

// ListSystemTemplates returns every template without options, ordered by
// equipment type and tonnage.
func (s *Store) ListSystemTemplates(ctx context.Context) ([]estimate.System, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, tonnage, furnace_btu, equipment_type
		FROM system_templates
		ORDER BY equipment_type, tonnage, name
	`)
	if err != nil {
		return nil, fmt.Errorf("query system templates: %w", err)
	}
	defer rows.Close()

	systems := make([]estimate.System, 0)
	for rows.Next() {
		var (
			sys        estimate.System
			furnaceBTU sql.NullFloat64
			eqType     string
		)
		if err := rows.Scan(&sys.ID, &sys.Name, &sys.Tonnage, &furnaceBTU, &eqType); err != nil {
			return nil, fmt.Errorf("scan system template: %w", err)
		}
		sys.EquipmentType = estimate.EquipmentType(eqType)
		sys.Enabled = true
		if furnaceBTU.Valid {
			btu := furnaceBTU.Float64
			sys.FurnaceBTU = &btu
		}
		systems = append(systems, sys)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate system templates: %w", err)
	}

	return systems, nil
}

// DeleteSystemTemplate removes a template and, by cascade, its options.
func (s *Store) DeleteSystemTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM system_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete system template: %w", err)
	}
	return requireAffected(result)
}

func (s *Store) listTemplateOptions(ctx context.Context, templateID string) ([]estimate.Option, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id,
			tier,
			show_to_customer,
			seer,
			stage,
			tonnage,
			price,
			image_name,
			outdoor_model,
			indoor_model,
			furnace_model,
			warranty_text,
			advantages_json
		FROM system_template_options
		WHERE system_template_id = ?
		ORDER BY position
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("query system template options: %w", err)
	}
	defer rows.Close()

	options := make([]estimate.Option, 0)
	for rows.Next() {
		var (
			opt                                       estimate.Option
			tier, advantages                          string
			image, outdoor, indoor, furnace, warranty sql.NullString
		)
		if err := rows.Scan(
			&opt.ID,
			&tier,
			&opt.ShowToCustomer,
			&opt.SEER,
			&opt.Stage,
			&opt.Tonnage,
			&opt.Price,
			&image,
			&outdoor,
			&indoor,
			&furnace,
			&warranty,
			&advantages,
		); err != nil {
			return nil, fmt.Errorf("scan system template option: %w", err)
		}
		opt.Tier = estimate.Tier(tier)
		opt.ImageName = stringPtr(image)
		opt.OutdoorModel = stringPtr(outdoor)
		opt.IndoorModel = stringPtr(indoor)
		opt.FurnaceModel = stringPtr(furnace)
		opt.WarrantyText = stringPtr(warranty)
		if err := json.Unmarshal([]byte(advantages), &opt.Advantages); err != nil {
			return nil, fmt.Errorf("decode advantages for option %s: %w", opt.ID, err)
		}
		options = append(options, opt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate system template options: %w", err)
	}

	return options, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
