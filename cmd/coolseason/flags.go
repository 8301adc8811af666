package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/estimate"
	"github.com/Simplici0/coolseason/internal/pricing"
	"github.com/Simplici0/coolseason/internal/settings"
)

func parseFiniteFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s must be numeric", field)
	}
	return value, nil
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := parseFiniteFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be greater than or equal to 0", field)
	}
	return value, nil
}

func parsePositiveFloat(raw, field string) (float64, error) {
	value, err := parseFiniteFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", field)
	}
	return value, nil
}

func parseMarkup(raw string) (float64, error) {
	value, err := settings.ParsePercent(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("markup: %w", err)
	}
	return value, nil
}

// parseTermMonths accepts only the terms the rate table lists.
func parseTermMonths(raw string) (int, error) {
	value, err := settings.ParseTermMonths(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("term: %w", err)
	}
	if !pricing.IsAvailableTerm(value) {
		return 0, fmt.Errorf("term must be one of %v", pricing.AvailableTerms())
	}
	return value, nil
}

func parsePaymentOption(raw string) (pricing.PaymentOption, error) {
	for _, option := range pricing.PaymentOptions() {
		if strings.EqualFold(strings.TrimSpace(raw), string(option)) {
			return option, nil
		}
	}
	return "", fmt.Errorf("payment must be one of %v", pricing.PaymentOptions())
}

func parseTier(raw string) (estimate.Tier, error) {
	tier, ok := estimate.ParseTier(strings.TrimSpace(raw))
	if !ok {
		return "", fmt.Errorf("tier must be one of %v", estimate.Tiers())
	}
	return tier, nil
}

func parseEquipmentType(raw string) (estimate.EquipmentType, error) {
	equipment, ok := estimate.ParseEquipmentType(strings.TrimSpace(raw))
	if !ok {
		return "", fmt.Errorf("unknown equipment type %q", raw)
	}
	return equipment, nil
}

type paymentFlags struct {
	payment string
	markup  string
	term    string
}

func (f *paymentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.payment, "payment", "", "payment option (cash_check_zelle, credit_card, finance)")
	cmd.Flags().StringVar(&f.markup, "markup", "", "finance markup percent (0-100)")
	cmd.Flags().StringVar(&f.term, "term", "", "finance term in months (24, 36, 48, 60)")
}

// apply overrides p with every flag the user set.
func (f *paymentFlags) apply(cmd *cobra.Command, p settings.Payment) (settings.Payment, error) {
	var err error
	if cmd.Flags().Changed("payment") {
		if p.Option, err = parsePaymentOption(f.payment); err != nil {
			return p, err
		}
	}
	if cmd.Flags().Changed("markup") {
		if p.MarkupPercent, err = parseMarkup(f.markup); err != nil {
			return p, err
		}
	}
	if cmd.Flags().Changed("term") {
		if p.TermMonths, err = parseTermMonths(f.term); err != nil {
			return p, err
		}
	}
	return p, nil
}
