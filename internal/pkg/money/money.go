package money

import "github.com/shopspring/decimal"

// DefaultMinorUnits is the number of fractional digits of the store currency.
const DefaultMinorUnits int32 = 2

// Round rounds d to the given minor-unit precision using round-half-up.
// Prices are never negative, so decimal's half-away-from-zero rounding is half-up here;
// negative inputs are rounded toward +inf on the half to keep the rule uniform.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	if d.IsNegative() {
		return d.Add(decimal.New(5, -(places + 1))).RoundFloor(places)
	}
	return d.Round(places)
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Percent returns base * (1 - pct/100) without rounding.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(100).Sub(pct).Div(decimal.NewFromInt(100))
	return base.Mul(factor)
}
