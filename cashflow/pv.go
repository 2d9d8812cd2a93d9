// Package cashflow computes time-value-of-money metrics over parallel
// time/amount sequences: discrete and continuous present value, the
// annuity and perpetuity closed forms, and internal rate of return via
// bracketed bisection.
//
// All functions are pure and safe for concurrent use on distinct inputs;
// they only ever read their arguments.
package cashflow

import "math"

// PVDiscrete returns the present value of a discretely compounded
// cash-flow stream at rate r:
//
//	PV = Σ amounts[i] / (1+r)^times[i]
//
// times and amounts must have equal length; this primitive does not
// check (the IRR entry point does). Division by zero and overflow follow
// IEEE semantics, so pathological rates yield Inf or NaN rather than a
// panic.
func PVDiscrete(times, amounts []float64, r float64) float64 {
	pv := 0.0
	for i := range times {
		pv += amounts[i] / math.Pow(1.0+r, times[i])
	}
	return pv
}

// PVContinuous returns the present value under continuous compounding:
//
//	PV = Σ amounts[i] · e^(−r·times[i])
//
// Same shape contract as PVDiscrete.
func PVContinuous(times, amounts []float64, r float64) float64 {
	pv := 0.0
	for i := range times {
		pv += amounts[i] * math.Exp(-r*times[i])
	}
	return pv
}

// Perpetuity returns the present value x/r of an infinite constant
// payment stream. At r = 0 the IEEE infinity propagates to the caller.
func Perpetuity(x, r float64) float64 {
	return x / r
}

// GrowingPerpetuity returns x1/(r−g), the present value of a perpetuity
// whose first payment is x1 growing at rate g. At r = g the division by
// zero propagates.
func GrowingPerpetuity(x1, r, g float64) float64 {
	return x1 / (r - g)
}

// Annuity returns the present value of n constant payments of x at
// rate r. Zero periods value to zero; r = 0 yields NaN.
func Annuity(x float64, n int, r float64) float64 {
	return x * (1.0/r - 1.0/(r*math.Pow(1.0+r, float64(n))))
}

// GrowingAnnuity returns the present value of n payments starting at x1
// and growing at rate g, discounted at r.
func GrowingAnnuity(x1 float64, n int, r, g float64) float64 {
	return x1 * (1.0/(r-g) - math.Pow((1.0+g)/(1.0+r), float64(n))/(r-g))
}
