package main

import (
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/coolseason/internal/estimate"
	"github.com/Simplici0/coolseason/internal/pricing"
	"github.com/Simplici0/coolseason/internal/settings"
)

func TestParseNumericFlags(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string, string) (float64, error)
		raw     string
		want    float64
		wantErr string
	}{
		{name: "non-negative zero", parse: parseNonNegativeFloat, raw: "0", want: 0},
		{name: "non-negative trims", parse: parseNonNegativeFloat, raw: " 12.5 ", want: 12.5},
		{name: "non-negative rejects negative", parse: parseNonNegativeFloat, raw: "-1", wantErr: "field must be greater than or equal to 0"},
		{name: "non-negative rejects text", parse: parseNonNegativeFloat, raw: "abc", wantErr: "field must be numeric"},
		{name: "non-negative rejects NaN", parse: parseNonNegativeFloat, raw: "NaN", wantErr: "field must be numeric"},
		{name: "non-negative rejects infinity", parse: parseNonNegativeFloat, raw: "+Inf", wantErr: "field must be numeric"},
		{name: "positive rejects NaN", parse: parsePositiveFloat, raw: "nan", wantErr: "field must be numeric"},
		{name: "positive", parse: parsePositiveFloat, raw: "2.5", want: 2.5},
		{name: "positive rejects zero", parse: parsePositiveFloat, raw: "0", wantErr: "field must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.raw, "field")
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseTermMonths(t *testing.T) {
	for _, term := range pricing.AvailableTerms() {
		got, err := parseTermMonths(strconv.Itoa(term))
		require.NoError(t, err)
		assert.Equal(t, term, got)
	}

	_, err := parseTermMonths("30")
	assert.Error(t, err)
	_, err = parseTermMonths("0")
	assert.Error(t, err)
	_, err = parseTermMonths("six")
	assert.Error(t, err)
}

func TestParseEnumFlags(t *testing.T) {
	option, err := parsePaymentOption("FINANCE")
	require.NoError(t, err)
	assert.Equal(t, pricing.PaymentFinance, option)
	_, err = parsePaymentOption("bitcoin")
	assert.Error(t, err)

	tier, err := parseTier("best")
	require.NoError(t, err)
	assert.Equal(t, estimate.TierBest, tier)
	_, err = parseTier("platinum")
	assert.Error(t, err)

	eq, err := parseEquipmentType("heat pump + air handler")
	require.NoError(t, err)
	assert.Equal(t, estimate.EquipmentHeatPumpAirHandler, eq)
	_, err = parseEquipmentType("swamp cooler")
	assert.Error(t, err)
}

func TestPaymentFlagsApplyOnlyChangedFlags(t *testing.T) {
	var flags paymentFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--term", "36"}))

	base := settings.Payment{Option: pricing.PaymentCreditCard, MarkupPercent: 4, TermMonths: 60}
	got, err := flags.apply(cmd, base)
	require.NoError(t, err)
	assert.Equal(t, settings.Payment{Option: pricing.PaymentCreditCard, MarkupPercent: 4, TermMonths: 36}, got)

	require.NoError(t, cmd.Flags().Parse([]string{"--markup", "250"}))
	_, err = flags.apply(cmd, base)
	assert.ErrorIs(t, err, settings.ErrInvalidSetting)
}

func TestParseMarkup(t *testing.T) {
	got, err := parseMarkup(" 100 ")
	require.NoError(t, err)
	assert.InDelta(t, 100, got, 1e-9)

	for _, raw := range []string{"100.5", "-1", "NaN", "Inf", "abc"} {
		_, err := parseMarkup(raw)
		assert.ErrorIs(t, err, settings.ErrInvalidSetting, raw)
	}
}
