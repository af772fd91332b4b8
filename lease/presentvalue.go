package lease

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PRESENT VALUE - Ordinary annuity
// =============================================================================

// PresentValue discounts the fixed monthly payments between start and end
// (inclusive of both boundary months) to their present value at the simple
// monthly rate, using the ordinary-annuity formula for in-arrears payments:
//
//	PV = payment x (1 - (1 + r)^(-n)) / r
//
// With a zero rate the formula degenerates to payment x n. The result is
// rounded half-up to a whole currency unit.
func PresentValue(payment decimal.Decimal, start, end TimePoint, annualRatePercent decimal.Decimal) decimal.Decimal {
	n := MonthsBetween(start, end) + 1
	r := monthlyRate(annualRatePercent)

	if r.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(n)))
	}

	one := decimal.NewFromInt(1)
	compounded := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	factor := one.Sub(one.Div(compounded)).Div(r)
	return roundUnit(payment.Mul(factor))
}
