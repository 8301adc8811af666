package estimate

// RecalculateTotals refreshes the cached subtotals and grand total. It is
// idempotent and runs at the end of every mutating method.
func (e *Estimate) RecalculateTotals() {
	var systems float64
	for _, sys := range e.Systems {
		if !sys.Enabled {
			continue
		}
		if opt, ok := sys.SelectedOption(); ok {
			systems += opt.Price
		}
	}

	var addOns float64
	for _, addOn := range e.AddOns {
		if addOn.Enabled {
			addOns += addOn.LineTotal()
		}
	}

	e.SystemsSubtotal = systems
	e.AddOnsSubtotal = addOns
	e.GrandTotal = systems + addOns
}

// SystemAddOnsSubtotal sums the enabled add-ons scoped to systemID.
func (e *Estimate) SystemAddOnsSubtotal(systemID string) float64 {
	var total float64
	for _, addOn := range e.AddOns {
		if addOn.Enabled && addOn.SystemID != "" && addOn.SystemID == systemID {
			total += addOn.LineTotal()
		}
	}
	return total
}

// SystemTierTotal is what one system costs if the customer picks tier: the
// tier's option price (0 when the system has none) plus its enabled add-ons.
func (e *Estimate) SystemTierTotal(systemID string, tier Tier) (float64, error) {
	idx := e.systemIndex(systemID)
	if idx < 0 {
		return 0, ErrSystemNotFound
	}

	var price float64
	if opt, ok := e.Systems[idx].OptionForTier(tier); ok {
		price = opt.Price
	}
	return price + e.SystemAddOnsSubtotal(systemID), nil
}

// TierGrandTotal is the grand total the estimate would have if every enabled
// system were set to tier. The cached totals are not touched.
func (e *Estimate) TierGrandTotal(tier Tier) float64 {
	var total float64
	for _, sys := range e.Systems {
		if !sys.Enabled {
			continue
		}
		if opt, ok := sys.OptionForTier(tier); ok {
			total += opt.Price
		}
	}
	for _, addOn := range e.AddOns {
		if addOn.Enabled {
			total += addOn.LineTotal()
		}
	}
	return total
}
