package tax

import "github.com/shopspring/decimal"

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
// Rounding happens only when a value is emitted; intermediate arithmetic
// stays unrounded to avoid compounding drift.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// percentOf computes amount*rate/100 in decimal arithmetic.
func percentOf(amount, rate float64) float64 {
	p := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100))
	f, _ := p.Float64()
	return f
}
