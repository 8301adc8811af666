package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/coolseason/internal/estimate"
)

const addOnColumns = `id, name, description, default_price, enabled, free_when_tier_is_best, use_quantity`

func scanAddOnTemplate(row interface{ Scan(...any) error }) (estimate.AddOnTemplate, error) {
	var t estimate.AddOnTemplate
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.DefaultPrice, &t.Enabled, &t.FreeWhenTierIsBest, &t.UseQuantity)
	return t, err
}

func validateAddOnTemplate(t estimate.AddOnTemplate) (estimate.AddOnTemplate, error) {
	name, err := requireName(t.Name)
	if err != nil {
		return t, err
	}
	t.Name = name
	if t.DefaultPrice < 0 {
		return t, fmt.Errorf("%w: default price must be greater than or equal to 0", ErrInvalidTemplate)
	}
	return t, nil
}

// ListAddOnTemplates returns add-on templates ordered by name. With
// enabledOnly set, disabled templates are skipped.
func (s *Store) ListAddOnTemplates(ctx context.Context, enabledOnly bool) ([]estimate.AddOnTemplate, error) {
	query := `SELECT ` + addOnColumns + ` FROM addon_templates`
	if enabledOnly {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query addon templates: %w", err)
	}
	defer rows.Close()

	templates := make([]estimate.AddOnTemplate, 0)
	for rows.Next() {
		t, err := scanAddOnTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan addon template: %w", err)
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addon templates: %w", err)
	}

	return templates, nil
}

// GetAddOnTemplate returns the template with id.
func (s *Store) GetAddOnTemplate(ctx context.Context, id string) (estimate.AddOnTemplate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+addOnColumns+` FROM addon_templates WHERE id = ?`, id)
	t, err := scanAddOnTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return estimate.AddOnTemplate{}, ErrTemplateNotFound
	}
	if err != nil {
		return estimate.AddOnTemplate{}, fmt.Errorf("query addon template %s: %w", id, err)
	}
	return t, nil
}

// CreateAddOnTemplate inserts t, assigning an id when it has none.
func (s *Store) CreateAddOnTemplate(ctx context.Context, t estimate.AddOnTemplate) (estimate.AddOnTemplate, error) {
	t, err := validateAddOnTemplate(t)
	if err != nil {
		return estimate.AddOnTemplate{}, err
	}
	if t.ID == "" {
		t.ID = estimate.NewID()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO addon_templates (`+addOnColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.Description, t.DefaultPrice, t.Enabled, t.FreeWhenTierIsBest, t.UseQuantity)
	if err != nil {
		return estimate.AddOnTemplate{}, fmt.Errorf("insert addon template: %w", err)
	}
	return t, nil
}

// UpdateAddOnTemplate replaces the stored fields of t.
func (s *Store) UpdateAddOnTemplate(ctx context.Context, t estimate.AddOnTemplate) error {
	t, err := validateAddOnTemplate(t)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE addon_templates
		SET
			name = ?,
			description = ?,
			default_price = ?,
			enabled = ?,
			free_when_tier_is_best = ?,
			use_quantity = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, t.Name, t.Description, t.DefaultPrice, t.Enabled, t.FreeWhenTierIsBest, t.UseQuantity, t.ID)
	if err != nil {
		return fmt.Errorf("update addon template: %w", err)
	}
	return requireAffected(result)
}

// SetAddOnTemplateEnabled toggles whether the template is offered.
func (s *Store) SetAddOnTemplateEnabled(ctx context.Context, id string, enabled bool) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE addon_templates
		SET enabled = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, enabled, id)
	if err != nil {
		return fmt.Errorf("update addon template: %w", err)
	}
	return requireAffected(result)
}

// DeleteAddOnTemplate removes the template. Add-ons already on estimates
// keep their copied values.
func (s *Store) DeleteAddOnTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM addon_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete addon template: %w", err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
