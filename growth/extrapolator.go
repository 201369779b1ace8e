package growth

import "math"

// Predict projects baseValue observed in baseYear to targetYear and caps the result at the
// analyzer's MaxValue.
//
// ModeConstant uses the closed form base * 2^((target-base)/DoublingPeriod).
// ModeTimeVarying walks from baseYear to targetYear in steps of at most one year, compounding
// each step by 2^(step/period) with the period of the calendar year the step covers. A fractional
// final step is allowed. Targets before baseYear walk backwards and divide instead. The walk is
// evaluated per schedule segment, so any span, however long, costs the same.
//
// Predict never fails; it is the single source of extrapolated values for every analysis
// in this package.
//
// Parameters:
//   - baseValue: Observed value in baseYear
//   - baseYear: Year of the observation, fractional years allowed
//   - targetYear: Year to project to, before or after baseYear
//   - mode: ModeConstant or ModeTimeVarying
//
// Returns:
//   - float64: Projected value, at most MaxValue
//
// Example:
//
//	a := growth.Default()
//	v := a.Predict(2300, 1971, 1981, growth.ModeConstant)   // 73600
//	w := a.Predict(1e6, 2018, 2022, growth.ModeTimeVarying) // 1e6 * 2^1.8
func (a *Analyzer) Predict(baseValue, baseYear, targetYear float64, mode Mode) float64 {
	return math.Min(a.extrapolate(baseValue, baseYear, targetYear, mode), a.cfg.MaxValue)
}

// PredictUncapped is Predict without the MaxValue ceiling.
func (a *Analyzer) PredictUncapped(baseValue, baseYear, targetYear float64, mode Mode) float64 {
	return a.extrapolate(baseValue, baseYear, targetYear, mode)
}

// IsCapped reports whether v has reached the analyzer's MaxValue ceiling.
func (a *Analyzer) IsCapped(v float64) bool {
	return v >= a.cfg.MaxValue
}

// MaxValue returns the ceiling applied to primary-metric predictions.
func (a *Analyzer) MaxValue() float64 {
	return a.cfg.MaxValue
}

func (a *Analyzer) extrapolate(baseValue, baseYear, targetYear float64, mode Mode) float64 {
	if baseValue == 0 {
		return 0
	}
	if mode == ModeConstant {
		return baseValue * math.Exp2((targetYear-baseYear)/a.cfg.DoublingPeriod)
	}

	if math.IsInf(baseYear, 0) || math.IsInf(targetYear, 0) {
		// no finite walk exists; extrapolate at the slowest period in the table
		return baseValue * math.Exp2((targetYear-baseYear)/a.cfg.Schedule.PeriodForYear(math.MaxInt))
	}

	return baseValue * math.Exp2(a.cfg.Schedule.walk(baseYear, targetYear))
}
