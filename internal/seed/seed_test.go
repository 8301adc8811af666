package seed

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Simplici0/coolseason/internal/catalog"
	"github.com/Simplici0/coolseason/internal/db"
	"github.com/Simplici0/coolseason/internal/estimate"
	"github.com/Simplici0/coolseason/internal/migrations"
	"github.com/Simplici0/coolseason/internal/pricing"
	"github.com/Simplici0/coolseason/internal/settings"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	want := len(DefaultAddOnTemplates()) + len(DefaultSystemTemplates()) + 3
	for i := 0; i < 10; i++ {
		stats, err := Run(ctx, database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != want {
				t.Fatalf("expected %d inserts in first run, got %d", want, stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM addon_templates`, nil, len(DefaultAddOnTemplates()))
	assertCount(t, database, `SELECT COUNT(*) FROM system_templates`, nil, len(DefaultSystemTemplates()))
	assertCount(t, database, `SELECT COUNT(*) FROM system_template_options`, nil, 6)
	assertCount(t, database, `SELECT COUNT(*) FROM settings WHERE key = ?`, settings.KeyPaymentOption, 1)
}

func TestRunKeepsExistingSettings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := db.Open(filepath.Join(t.TempDir(), "seed-settings.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	store := settings.NewSQLStore(database)
	if err := store.Set(ctx, settings.KeyPaymentOption, string(pricing.PaymentFinance)); err != nil {
		t.Fatalf("set payment option: %v", err)
	}

	if _, err := Run(ctx, database); err != nil {
		t.Fatalf("run seed: %v", err)
	}

	payment, err := settings.LoadPayment(ctx, store)
	if err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Option != pricing.PaymentFinance {
		t.Fatalf("expected payment option to stay finance, got %s", payment.Option)
	}
	if payment.TermMonths != pricing.DefaultTermMonths {
		t.Fatalf("expected default term %d, got %d", pricing.DefaultTermMonths, payment.TermMonths)
	}
}

func TestSeededTemplatesAreFindable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := db.Open(filepath.Join(t.TempDir(), "seed-find.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := Run(ctx, database); err != nil {
		t.Fatalf("run seed: %v", err)
	}

	sys, ok, err := catalog.NewStore(database).FindSystemTemplate(ctx, 3, estimate.EquipmentACFurnace)
	if err != nil {
		t.Fatalf("find system template: %v", err)
	}
	if !ok {
		t.Fatalf("expected seeded AC + Furnace template")
	}
	if len(sys.Options) != 3 || sys.Options[2].Price != 10400 {
		t.Fatalf("unexpected seeded options: %+v", sys.Options)
	}
	if sys.Options[0].ImageName == nil || *sys.Options[0].ImageName != "snow" {
		t.Fatalf("expected good tier image to be seeded")
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, args any, expected int) {
	t.Helper()

	var count int
	var err error
	switch v := args.(type) {
	case nil:
		err = database.QueryRow(query).Scan(&count)
	case []any:
		err = database.QueryRow(query, v...).Scan(&count)
	default:
		err = database.QueryRow(query, v).Scan(&count)
	}
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
