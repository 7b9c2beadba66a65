// internal/domain/tier_test.go
package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input string
		want  Tier
		ok    bool
	}{
		{"basic", TierBasic, true},
		{"BASIC", TierBasic, true},
		{"Premium", TierPremium, true},
		{"ultimate", TierUltimate, true},
		{"ULTIMATE", TierUltimate, true},
		{"gold", "", false},
		{"", "", false},
		{"premium ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tier, ok := ParseTier(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, tier)
		})
	}
}

func TestTierMonthlyPrices(t *testing.T) {
	assert.True(t, TierBasic.MonthlyPrice().Equal(decimal.RequireFromString("9.99")))
	assert.True(t, TierPremium.MonthlyPrice().Equal(decimal.RequireFromString("19.99")))
	assert.True(t, TierUltimate.MonthlyPrice().Equal(decimal.RequireFromString("29.99")))
}
