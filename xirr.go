package finbook

import "math"

// The solver finds the annualized rate r that zeroes the net present value of
// an irregular cash-flow series:
//
//	NPV(r) = Σ amountᵢ × (1 + r)^(−yearsᵢ)
//
// where yearsᵢ is the time from the earliest flow to flow i, counted in
// 365.25-day years. Newton-Raphson with the analytic derivative, damped by
// clamping the rate after every step.
//
// These constants are behavioral contracts, not tuning knobs: tests pin the
// clamp bounds, the iteration cap and the degenerate-input outcomes.
const (
	// XIRRTolerance is the |NPV| threshold under which the solver considers
	// the rate converged. Callers needing a strict guarantee compare the
	// report's Residual against it.
	XIRRTolerance = 1e-6

	// xirrDerivativeFloor stops the iteration when |dNPV/dr| falls below it,
	// before the division blows up near a flat derivative.
	xirrDerivativeFloor = 1e-6

	xirrMaxIterations = 100
	xirrInitialGuess  = 0.10
	xirrMinRate       = -0.99
	xirrMaxRate       = 10.0
	daysPerYear       = 365.25
)

// SolveXIRR returns the annualized money-weighted rate of return of the
// series, as a percentage, together with the |NPV| residual at that rate.
//
// Non-convergence is not an error: after the iteration cap the best estimate
// so far is returned and the residual tells the caller how good it is.
// Degenerate input — fewer than two flows, or every flow on the same day —
// yields rate 0.
func SolveXIRR(flows []CashFlow) (ratePercent, residual float64) {
	if len(flows) < 2 {
		return 0, 0
	}

	epoch := flows[0].Date
	for _, f := range flows[1:] {
		if f.Date.Before(epoch) {
			epoch = f.Date
		}
	}

	amounts := make([]float64, len(flows))
	years := make([]float64, len(flows))
	span := 0.0
	for i, f := range flows {
		amounts[i] = f.Amount.InexactFloat64()
		years[i] = float64(f.Date.DaysSince(epoch)) / daysPerYear
		if years[i] > span {
			span = years[i]
		}
	}
	if span == 0 {
		// Every flow on the same day: no usable duration, NPV does not
		// depend on the rate at all.
		npv, _ := xirrStep(0, amounts, years)
		return 0, math.Abs(npv)
	}

	rate := xirrInitialGuess
	for iter := 0; iter < xirrMaxIterations; iter++ {
		npv, deriv := xirrStep(rate, amounts, years)
		if math.Abs(npv) < XIRRTolerance {
			break
		}
		if math.Abs(deriv) < xirrDerivativeFloor {
			break
		}
		rate = clampRate(rate - npv/deriv)
	}

	npv, _ := xirrStep(rate, amounts, years)
	return rate * 100, math.Abs(npv)
}

// xirrStep evaluates NPV and its derivative with respect to the rate at a
// single candidate rate. The rate must keep 1+rate positive, which the clamp
// bounds guarantee.
func xirrStep(rate float64, amounts, years []float64) (npv, deriv float64) {
	base := 1 + rate
	for i, a := range amounts {
		factor := math.Pow(base, -years[i])
		npv += a * factor
		deriv += a * factor * -years[i] / base
	}
	return npv, deriv
}

// clampRate keeps the rate inside [xirrMinRate, xirrMaxRate], away from the
// zero/negative discount base and from pathological extrapolations.
func clampRate(r float64) float64 {
	if r < xirrMinRate {
		return xirrMinRate
	}
	if r > xirrMaxRate {
		return xirrMaxRate
	}
	return r
}
