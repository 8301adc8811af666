package estimate

import (
	"time"

	"github.com/Simplici0/coolseason/internal/pricing"
)

// SystemLine is the selected tier of one enabled system, ready to print.
type SystemLine struct {
	Name          string
	EquipmentType EquipmentType
	Capacity      string
	Tier          Tier
	Price         string
	Selected      bool
}

// AddOnLine is one enabled add-on, ready to print.
type AddOnLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// Summary is the formatted view of an estimate handed to renderers and
// exporters.
type Summary struct {
	Number          string
	Status          Status
	CustomerName    string
	Systems         []SystemLine
	AddOns          []AddOnLine
	SystemsSubtotal string
	AddOnsSubtotal  string
	GrandTotal      string
	Payment         pricing.Result
	PaymentLabel    string
	PaymentTotal    string
	FinancingPlan   string
	Signed          bool
	SignedAt        *time.Time
}

// Summarize formats the estimate's current totals under the payment
// configuration cfg.
func (e *Estimate) Summarize(cfg pricing.Config) Summary {
	payment := pricing.Calculate(e.GrandTotal, cfg)

	summary := Summary{
		Number:          e.Number,
		Status:          e.Status,
		CustomerName:    e.CustomerName,
		SystemsSubtotal: pricing.FormatCurrency(e.SystemsSubtotal),
		AddOnsSubtotal:  pricing.FormatCurrency(e.AddOnsSubtotal),
		GrandTotal:      pricing.FormatCurrency(e.GrandTotal),
		Payment:         payment,
		PaymentLabel:    payment.PaymentOption.DisplayName(),
		PaymentTotal:    pricing.FormatCurrency(payment.Totals.Total),
		Signed:          e.HasSignature(),
		SignedAt:        e.SignatureDate,
	}
	if summary.Number == "" {
		summary.Number = "—"
	}
	if payment.PaymentOption == pricing.PaymentFinance {
		summary.FinancingPlan = payment.FinancingPlanText()
	}

	for _, sys := range e.Systems {
		if !sys.Enabled {
			continue
		}
		line := SystemLine{
			Name:          sys.Name,
			EquipmentType: sys.EquipmentType,
			Capacity:      pricing.FormatTonnage(sys.Tonnage),
			Price:         pricing.FormatCurrency(0),
		}
		if opt, ok := sys.SelectedOption(); ok {
			line.Tier = opt.Tier
			line.Price = pricing.FormatCurrency(opt.Price)
			line.Selected = true
		}
		summary.Systems = append(summary.Systems, line)
	}

	for _, addOn := range e.AddOns {
		if !addOn.Enabled {
			continue
		}
		summary.AddOns = append(summary.AddOns, AddOnLine{
			Name:      addOn.Name,
			Quantity:  max(1, addOn.Quantity),
			UnitPrice: pricing.FormatCurrency(addOn.Price),
			LineTotal: pricing.FormatCurrency(addOn.LineTotal()),
		})
	}

	return summary
}
