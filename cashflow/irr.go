package cashflow

import (
	"errors"
	"fmt"
	"math"

	"github.com/davrios/finmath/cashflow/config"
)

var (
	// ErrLengthMismatch is returned by IRR when the time and amount
	// sequences differ in length.
	ErrLengthMismatch = errors.New("times and amounts differ in length")
	// ErrBracketNotFound is returned when bracket expansion exhausts its
	// iteration budget without finding a sign change in the PV.
	ErrBracketNotFound = errors.New("no sign-changing bracket found")
	// ErrNoConvergence is returned when bisection exhausts its iteration
	// budget without meeting either convergence criterion.
	ErrNoConvergence = errors.New("bisection did not converge")
)

// UniqueIRR reports whether the amount sequence is likely to admit a
// single internal rate of return, by Descartes-rule sign counting. Zero
// sign changes mean no root at all; exactly one means a unique root. With
// more than one change the count is repeated on the cumulative sums, and
// at most one change there still implies uniqueness.
//
// This is a necessary-condition heuristic, not a proof: a true result
// does not guarantee a unique real root.
func UniqueIRR(amounts []float64) bool {
	switch signChanges(amounts) {
	case 0:
		return false
	case 1:
		return true
	}

	cumulative := make([]float64, len(amounts))
	running := 0.0
	for i, a := range amounts {
		running += a
		cumulative[i] = running
	}
	return signChanges(cumulative) <= 1
}

// signChanges counts transitions between consecutive entries of opposite
// sign. Zero counts as positive.
func signChanges(values []float64) int {
	changes := 0
	for i := 1; i < len(values); i++ {
		if sign(values[i-1]) != sign(values[i]) {
			changes++
		}
	}
	return changes
}

func sign(x float64) int {
	if x >= 0 {
		return 1
	}
	return -1
}

// IRR solves PVDiscrete(times, amounts, y) = 0 for y.
//
// The solver first expands a rate bracket outward from the configured
// initial interval, growing whichever endpoint has the smaller-magnitude
// PV until the endpoint PVs take opposite signs, then bisects. Both
// phases are bounded by the configured iteration cap. Errors: a wrapped
// ErrLengthMismatch for ragged input, ErrBracketNotFound when no sign
// change appears, ErrNoConvergence when bisection runs out of halvings.
func IRR(times, amounts []float64) (float64, error) {
	if len(times) != len(amounts) {
		return 0, fmt.Errorf("cashflow: %w: %d times vs %d amounts",
			ErrLengthMismatch, len(times), len(amounts))
	}

	cfg := config.GetConfig()

	x1, x2 := cfg.BracketLow, cfg.BracketHigh
	f1 := PVDiscrete(times, amounts, x1)
	f2 := PVDiscrete(times, amounts, x2)

	bracketed := false
	for i := 0; i < cfg.MaxIterations; i++ {
		if f1*f2 < 0 {
			bracketed = true
			break
		}
		// Push the endpoint with the smaller |PV| away from the other:
		// it is the one more likely to be near the sign change.
		if math.Abs(f1) < math.Abs(f2) {
			x1 += cfg.BracketGrowth * (x1 - x2)
			f1 = PVDiscrete(times, amounts, x1)
		} else {
			x2 += cfg.BracketGrowth * (x2 - x1)
			f2 = PVDiscrete(times, amounts, x2)
		}
	}
	if !bracketed {
		return 0, fmt.Errorf("cashflow: %w after %d attempts", ErrBracketNotFound, cfg.MaxIterations)
	}

	// Bisection: rtb tracks the endpoint on the negative-PV side, dx the
	// signed interval toward the other endpoint.
	var rtb, dx float64
	if f1 < 0 {
		rtb, dx = x1, x2-x1
	} else {
		rtb, dx = x2, x1-x2
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		dx *= 0.5
		xMid := rtb + dx
		fMid := PVDiscrete(times, amounts, xMid)
		if fMid <= 0 {
			rtb = xMid
		}
		if math.Abs(fMid) < cfg.Accuracy || math.Abs(dx) < cfg.Accuracy {
			return xMid, nil
		}
	}
	return 0, fmt.Errorf("cashflow: %w after %d iterations", ErrNoConvergence, cfg.MaxIterations)
}
