package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tieredSystem(name string, good, better, best float64) System {
	return System{
		Enabled:       true,
		Name:          name,
		Tonnage:       3,
		EquipmentType: EquipmentACFurnace,
		Options: []Option{
			{Tier: TierGood, ShowToCustomer: true, SEER: 14, Stage: "Single", Tonnage: 3, Price: good},
			{Tier: TierBetter, ShowToCustomer: true, SEER: 16, Stage: "Two", Tonnage: 3, Price: better},
			{Tier: TierBest, ShowToCustomer: true, SEER: 20, Stage: "Variable", Tonnage: 3, Price: best},
		},
	}
}

func mustAddSystem(t *testing.T, e *Estimate, sys System) System {
	t.Helper()
	added, err := e.AddSystem(sys)
	require.NoError(t, err)
	return added
}

func optionID(t *testing.T, sys System, tier Tier) string {
	t.Helper()
	opt, ok := sys.OptionForTier(tier)
	require.True(t, ok, "system %q has no %s option", sys.Name, tier)
	return opt.ID
}

// assertTotalsConsistent recomputes the expected totals independently of
// RecalculateTotals and compares them with the cached values.
func assertTotalsConsistent(t *testing.T, e *Estimate) {
	t.Helper()

	var systems float64
	for _, sys := range e.Systems {
		if !sys.Enabled {
			continue
		}
		for _, opt := range sys.Options {
			if opt.SelectedByCustomer {
				systems += opt.Price
			}
		}
	}
	var addOns float64
	for _, a := range e.AddOns {
		if a.Enabled {
			addOns += a.Price * float64(a.Quantity)
		}
	}

	assert.InDelta(t, systems, e.SystemsSubtotal, 1e-9, "systems subtotal")
	assert.InDelta(t, addOns, e.AddOnsSubtotal, 1e-9, "add-ons subtotal")
	assert.InDelta(t, e.SystemsSubtotal+e.AddOnsSubtotal, e.GrandTotal, 1e-9, "grand total")
}

func assertSingleSelection(t *testing.T, e *Estimate) {
	t.Helper()
	for _, sys := range e.Systems {
		selected := 0
		for _, opt := range sys.Options {
			if opt.SelectedByCustomer {
				selected++
			}
		}
		assert.LessOrEqual(t, selected, 1, "system %q", sys.Name)
	}
}
