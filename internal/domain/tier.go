// internal/domain/tier.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tier is a named subscription plan with a fixed monthly price.
// The set of tiers is closed: anything ParseTier rejects never reaches
// the store.
type Tier string

const (
	TierBasic    Tier = "BASIC"
	TierPremium  Tier = "PREMIUM"
	TierUltimate Tier = "ULTIMATE"
)

// tierPrices is the exhaustive tier price table.
var tierPrices = map[Tier]decimal.Decimal{
	TierBasic:    decimal.New(999, -2),  // 9.99
	TierPremium:  decimal.New(1999, -2), // 19.99
	TierUltimate: decimal.New(2999, -2), // 29.99
}

// ParseTier matches a tier name case-insensitively. The second return
// value is false for unknown tiers.
func ParseTier(s string) (Tier, bool) {
	tier := Tier(strings.ToUpper(s))
	if _, ok := tierPrices[tier]; !ok {
		return "", false
	}
	return tier, true
}

// MonthlyPrice returns the fixed monthly price for the tier.
func (t Tier) MonthlyPrice() decimal.Decimal {
	return tierPrices[t]
}
