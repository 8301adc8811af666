package estimate

import (
	"context"
	"log/slog"
	"math"
	"slices"
)

// AddSystem appends sys, assigning ids where missing. Tiers are the caller's
// to populate; the engine does not invent pricing. Only the first option
// flagged as selected keeps its flag.
func (e *Estimate) AddSystem(sys System) (System, error) {
	if err := e.checkMutable("add system"); err != nil {
		return System{}, err
	}

	if sys.ID == "" {
		sys.ID = NewID()
	} else if e.systemIndex(sys.ID) >= 0 {
		return System{}, ErrDuplicateSystem
	}
	for _, opt := range sys.Options {
		if !validPrice(opt.Price) {
			return System{}, ErrInvalidPrice
		}
	}

	sys.Options = slices.Clone(sys.Options)
	selected := false
	for i := range sys.Options {
		opt := &sys.Options[i]
		if opt.ID == "" {
			opt.ID = NewID()
		}
		opt.Advantages = slices.Clone(opt.Advantages)
		if opt.SelectedByCustomer {
			opt.SelectedByCustomer = !selected
			selected = true
		}
	}

	e.Systems = append(e.Systems, sys)
	e.RecalculateTotals()
	return sys, nil
}

// SystemTemplates finds pre-built systems by size and equipment type.
type SystemTemplates interface {
	FindSystemTemplate(ctx context.Context, tonnage float64, equipment EquipmentType) (System, bool, error)
}

// AddSystemFromTemplate appends a copy of the matching template system with
// fresh ids and no customer selection.
func (e *Estimate) AddSystemFromTemplate(ctx context.Context, templates SystemTemplates, tonnage float64, equipment EquipmentType) (System, error) {
	if err := e.checkMutable("add system from template"); err != nil {
		return System{}, err
	}

	tmpl, ok, err := templates.FindSystemTemplate(ctx, tonnage, equipment)
	if err != nil {
		return System{}, err
	}
	if !ok {
		return System{}, ErrSystemTemplateNotFound
	}

	sys := tmpl
	sys.ID = ""
	sys.Options = make([]Option, len(tmpl.Options))
	for i, opt := range tmpl.Options {
		opt.ID = ""
		opt.SelectedByCustomer = false
		opt.Advantages = slices.Clone(opt.Advantages)
		sys.Options[i] = opt
	}

	return e.AddSystem(sys)
}

// RemoveSystem deletes the system and every add-on scoped to it.
func (e *Estimate) RemoveSystem(id string) error {
	if err := e.checkMutable("remove system"); err != nil {
		return err
	}
	defer e.RecalculateTotals()

	idx := e.systemIndex(id)
	if idx < 0 {
		return ErrSystemNotFound
	}

	e.Systems = slices.Delete(e.Systems, idx, idx+1)
	e.AddOns = slices.DeleteFunc(e.AddOns, func(a AddOn) bool {
		return a.SystemID != "" && a.SystemID == id
	})
	return nil
}

// SetSystemEnabled includes or excludes a system from the totals.
func (e *Estimate) SetSystemEnabled(id string, enabled bool) error {
	if err := e.checkMutable("toggle system"); err != nil {
		return err
	}
	defer e.RecalculateTotals()

	idx := e.systemIndex(id)
	if idx < 0 {
		return ErrSystemNotFound
	}
	e.Systems[idx].Enabled = enabled
	return nil
}

// AddAddOn instantiates template and appends it. A non-empty systemID must
// name a system on this estimate.
func (e *Estimate) AddAddOn(template AddOnTemplate, systemID string) (AddOn, error) {
	if err := e.checkMutable("add add-on"); err != nil {
		return AddOn{}, err
	}
	defer e.RecalculateTotals()

	if systemID != "" && e.systemIndex(systemID) < 0 {
		return AddOn{}, ErrSystemNotFound
	}
	if !validPrice(template.DefaultPrice) {
		return AddOn{}, ErrInvalidPrice
	}

	addOn := Instantiate(template, systemID)
	e.AddOns = append(e.AddOns, addOn)
	return addOn, nil
}

// AppendAddOn adds a directly constructed add-on, assigning an id when
// missing and clamping the quantity to at least 1.
func (e *Estimate) AppendAddOn(addOn AddOn) (AddOn, error) {
	if err := e.checkMutable("append add-on"); err != nil {
		return AddOn{}, err
	}
	defer e.RecalculateTotals()

	if addOn.SystemID != "" && e.systemIndex(addOn.SystemID) < 0 {
		return AddOn{}, ErrSystemNotFound
	}
	if !validPrice(addOn.Price) {
		return AddOn{}, ErrInvalidPrice
	}
	if addOn.ID == "" {
		addOn.ID = NewID()
	}
	addOn.Quantity = max(1, addOn.Quantity)

	e.AddOns = append(e.AddOns, addOn)
	return addOn, nil
}

// RemoveAddOn deletes the add-on with id.
func (e *Estimate) RemoveAddOn(id string) error {
	if err := e.checkMutable("remove add-on"); err != nil {
		return err
	}
	defer e.RecalculateTotals()

	idx := e.addOnIndex(id)
	if idx < 0 {
		return ErrAddOnNotFound
	}
	e.AddOns = slices.Delete(e.AddOns, idx, idx+1)
	return nil
}

// SetAddOnEnabled includes or excludes an add-on from the totals.
func (e *Estimate) SetAddOnEnabled(id string, enabled bool) error {
	if err := e.checkMutable("toggle add-on"); err != nil {
		return err
	}
	defer e.RecalculateTotals()

	idx := e.addOnIndex(id)
	if idx < 0 {
		return ErrAddOnNotFound
	}
	e.AddOns[idx].Enabled = enabled
	return nil
}

// SetAddOnQuantity stores max(1, quantity).
func (e *Estimate) SetAddOnQuantity(id string, quantity int) error {
	if err := e.checkMutable("set add-on quantity"); err != nil {
		return err
	}
	defer e.RecalculateTotals()

	idx := e.addOnIndex(id)
	if idx < 0 {
		return ErrAddOnNotFound
	}
	e.AddOns[idx].Quantity = max(1, quantity)
	return nil
}

// SelectOption marks optionID as the customer's choice within systemID and
// clears every other option of that system. Misses change nothing.
func (e *Estimate) SelectOption(systemID, optionID string) error {
	if err := e.checkMutable("select option"); err != nil {
		return err
	}
	defer e.RecalculateTotals()

	idx := e.systemIndex(systemID)
	if idx < 0 {
		return ErrSystemNotFound
	}

	options := e.Systems[idx].Options
	if !slices.ContainsFunc(options, func(o Option) bool { return o.ID == optionID }) {
		return ErrOptionNotFound
	}
	for i := range options {
		options[i].SelectedByCustomer = options[i].ID == optionID
	}
	return nil
}

// AcceptProposal selects tier on every enabled system that offers it.
// Systems without that tier keep their current selection.
func (e *Estimate) AcceptProposal(tier Tier) error {
	if err := e.checkMutable("accept proposal"); err != nil {
		return err
	}
	defer e.RecalculateTotals()

	for i := range e.Systems {
		sys := &e.Systems[i]
		if !sys.Enabled {
			continue
		}
		opt, ok := sys.OptionForTier(tier)
		if !ok {
			continue
		}
		for j := range sys.Options {
			sys.Options[j].SelectedByCustomer = sys.Options[j].ID == opt.ID
		}
	}
	return nil
}

func (e *Estimate) checkMutable(op string) error {
	if e.Status == StatusApproved {
		slog.Debug("rejected change to approved estimate", "estimate_id", e.ID, "op", op)
		return ErrEstimateLocked
	}
	return nil
}

func validPrice(price float64) bool {
	return price >= 0 && !math.IsInf(price, 1)
}

func (e *Estimate) systemIndex(id string) int {
	return slices.IndexFunc(e.Systems, func(s System) bool { return s.ID == id })
}

func (e *Estimate) addOnIndex(id string) int {
	return slices.IndexFunc(e.AddOns, func(a AddOn) bool { return a.ID == id })
}
