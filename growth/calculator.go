package growth

import (
	"fmt"
	"math"
)

// GrowthResult describes the realized growth of one metric between two observations.
//
// All derived fields are computed once by Compute and never change afterwards.
// Degenerate inputs never fail: a non-positive start value yields GrowthFactor 0,
// and a non-positive year span or start value yields CAGRPercent 0.
type GrowthResult struct {
	MetricName string
	StartValue float64
	EndValue   float64
	StartYear  int
	EndYear    int

	AbsoluteGrowth float64 // EndValue - StartValue
	GrowthFactor   float64 // EndValue / StartValue, 0 when StartValue <= 0
	CAGRPercent    float64 // compound annual growth rate in percent

	// PredictedValue and PredictedAccuracy are set only by law comparisons (Analyzer.AnalyzeLaw).
	PredictedValue    *float64
	PredictedAccuracy *float64
}

// Compute builds a GrowthResult from two (year, value) observations.
func Compute(metricName string, startValue, endValue float64, startYear, endYear int) GrowthResult {
	r := GrowthResult{
		MetricName:     metricName,
		StartValue:     startValue,
		EndValue:       endValue,
		StartYear:      startYear,
		EndYear:        endYear,
		AbsoluteGrowth: endValue - startValue,
		CAGRPercent:    CAGR(startValue, endValue, endYear-startYear),
	}
	if startValue > 0 {
		r.GrowthFactor = endValue / startValue
	}

	return r
}

// withPrediction returns a copy of r carrying a law prediction for its end year.
func (r GrowthResult) withPrediction(predicted float64) GrowthResult {
	accuracy := Accuracy(predicted, r.EndValue)
	r.PredictedValue = &predicted
	r.PredictedAccuracy = &accuracy

	return r
}

// Years returns the observed span in years.
func (r GrowthResult) Years() int {
	return r.EndYear - r.StartYear
}

func (r GrowthResult) String() string {
	return fmt.Sprintf("GrowthResult{Metric: %s, %d-%d, Factor: %.2fx, CAGR: %.2f%%}",
		r.MetricName, r.StartYear, r.EndYear, r.GrowthFactor, r.CAGRPercent)
}

// CAGR returns the compound annual growth rate, in percent, that turns start into end over years.
// It returns 0 when start <= 0 or years <= 0.
func CAGR(start, end float64, years int) float64 {
	if start <= 0 || years <= 0 {
		return 0
	}

	return (math.Pow(end/start, 1/float64(years)) - 1) * 100
}

// Accuracy returns actual as a percentage of predicted (100 = exact, >100 = ahead of the prediction).
// It returns 0 when predicted <= 0.
func Accuracy(predicted, actual float64) float64 {
	if predicted <= 0 {
		return 0
	}

	return actual / predicted * 100
}

// EffectiveDoublingPeriod returns the doubling period actually realized between two observations:
// years / log2(end/start). It returns 0 when the span is not positive, either value is not positive,
// or the metric did not grow.
func EffectiveDoublingPeriod(startYear int, startValue float64, endYear int, endValue float64) float64 {
	years := endYear - startYear
	if years <= 0 || startValue <= 0 || endValue <= 0 {
		return 0
	}

	factor := endValue / startValue
	if factor <= 1 {
		return 0
	}

	return float64(years) / math.Log2(factor)
}
