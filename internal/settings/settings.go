// Package settings reads the key-value settings the estimator is configured
// with: payment defaults and tier photo metadata.
package settings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/Simplici0/coolseason/internal/estimate"
	"github.com/Simplici0/coolseason/internal/pricing"
)

// Keys shared by every provider.
const (
	KeyPaymentOption        = "payment_option"
	KeyFinanceMarkupPercent = "finance_markup_percent"
	KeyFinanceTermMonths    = "finance_term_months"
)

// ErrInvalidSetting is returned when a stored value cannot be used.
var ErrInvalidSetting = errors.New("invalid setting")

// Provider is a read-only key-value settings source.
type Provider interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
}

// Payment is the payment configuration the estimator prices with.
type Payment struct {
	Option        pricing.PaymentOption
	MarkupPercent float64
	TermMonths    int
}

// DefaultPayment is used for keys a provider does not hold.
func DefaultPayment() Payment {
	return Payment{
		Option:        pricing.PaymentCashCheckZelle,
		MarkupPercent: 0,
		TermMonths:    pricing.DefaultTermMonths,
	}
}

// Config converts the settings into the calculator's explicit parameter.
func (p Payment) Config() pricing.Config {
	return pricing.Config{
		PaymentOption:        p.Option,
		FinanceMarkupPercent: p.MarkupPercent,
		FinanceTermMonths:    p.TermMonths,
	}
}

// Validate checks the ranges LoadPayment enforces.
func (p Payment) Validate() error {
	if !validPercent(p.MarkupPercent) {
		return fmt.Errorf("%w: markup %v must be between 0 and 100", ErrInvalidSetting, p.MarkupPercent)
	}
	if p.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be greater than 0", ErrInvalidSetting)
	}
	return nil
}

// Values renders the settings as provider strings.
func (p Payment) Values() map[string]string {
	return map[string]string{
		KeyPaymentOption:        string(p.Option),
		KeyFinanceMarkupPercent: cast.ToString(p.MarkupPercent),
		KeyFinanceTermMonths:    cast.ToString(p.TermMonths),
	}
}

// LoadPayment reads payment settings from p, falling back to defaults for
// missing keys.
func LoadPayment(ctx context.Context, p Provider) (Payment, error) {
	payment := DefaultPayment()

	raw, ok, err := p.Get(ctx, KeyPaymentOption)
	if err != nil {
		return Payment{}, fmt.Errorf("read %s: %w", KeyPaymentOption, err)
	}
	if ok {
		payment.Option = pricing.ParsePaymentOption(raw)
	}

	raw, ok, err = p.Get(ctx, KeyFinanceMarkupPercent)
	if err != nil {
		return Payment{}, fmt.Errorf("read %s: %w", KeyFinanceMarkupPercent, err)
	}
	if ok {
		if payment.MarkupPercent, err = ParsePercent(raw); err != nil {
			return Payment{}, fmt.Errorf("%s: %w", KeyFinanceMarkupPercent, err)
		}
	}

	raw, ok, err = p.Get(ctx, KeyFinanceTermMonths)
	if err != nil {
		return Payment{}, fmt.Errorf("read %s: %w", KeyFinanceTermMonths, err)
	}
	if ok {
		if payment.TermMonths, err = ParseTermMonths(raw); err != nil {
			return Payment{}, fmt.Errorf("%s: %w", KeyFinanceTermMonths, err)
		}
	}

	return payment, nil
}

// ParsePercent accepts a number between 0 and 100.
func ParsePercent(raw string) (float64, error) {
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidSetting, raw)
	}
	if !validPercent(value) {
		return 0, fmt.Errorf("%w: %v must be between 0 and 100", ErrInvalidSetting, value)
	}
	return value, nil
}

// validPercent rejects NaN along with values outside 0..100.
func validPercent(value float64) bool {
	return !math.IsNaN(value) && value >= 0 && value <= 100
}

// ParseTermMonths accepts a positive whole number of months. Terms outside
// the rate table are allowed and priced at the 60-month rate.
func ParseTermMonths(raw string) (int, error) {
	value, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidSetting, raw)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: term must be greater than 0", ErrInvalidSetting)
	}
	return value, nil
}

// Tier photo slots stored per equipment category and tier.
const (
	PhotoSlotData    = "photo_data"
	PhotoSlotInfo    = "info"
	PhotoSlotLink    = "link"
	PhotoSlotVisible = "visible"
)

// TierPhotoKey names the setting holding one tier photo slot, e.g.
// "tier_heatpump_best_info".
func TierPhotoKey(category estimate.PhotoCategory, tier estimate.Tier, slot string) string {
	return "tier_" + string(category) + "_" + strings.ToLower(string(tier)) + "_" + slot
}

// TierPhotoVisible reports whether the tier photo should be shown; slots
// never configured are visible.
func TierPhotoVisible(ctx context.Context, p Provider, category estimate.PhotoCategory, tier estimate.Tier) (bool, error) {
	raw, ok, err := p.Get(ctx, TierPhotoKey(category, tier, PhotoSlotVisible))
	if err != nil || !ok {
		return true, err
	}
	visible, err := cast.ToBoolE(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidSetting, raw)
	}
	return visible, nil
}
