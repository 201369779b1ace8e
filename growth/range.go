package growth

import (
	"math"

	"github.com/arloliu/growthlaw/series"
)

// AnalyzeRange computes the growth of samples between the first and last sample whose year
// lies in [startYear, endYear]. A zero bound leaves that side of the range open.
// The second return value is false when no sample falls in the range.
func (a *Analyzer) AnalyzeRange(metricName string, samples []series.Sample, startYear, endYear int) (GrowthResult, bool) {
	first, last, ok := rangeEndpoints(samples, startYear, endYear)
	if !ok {
		return GrowthResult{}, false
	}

	return Compute(metricName, first.Value, last.Value, first.Year, last.Year), true
}

// AnalyzeLaw is AnalyzeRange plus the constant-mode law prediction for the range's end year,
// recorded in PredictedValue and PredictedAccuracy.
func (a *Analyzer) AnalyzeLaw(metricName string, samples []series.Sample, startYear, endYear int) (GrowthResult, bool) {
	r, ok := a.AnalyzeRange(metricName, samples, startYear, endYear)
	if !ok {
		return GrowthResult{}, false
	}

	predicted := a.Predict(r.StartValue, float64(r.StartYear), float64(r.EndYear), ModeConstant)

	return r.withPrediction(predicted), true
}

func rangeEndpoints(samples []series.Sample, startYear, endYear int) (first, last series.Sample, ok bool) {
	if startYear == 0 {
		startYear = math.MinInt
	}
	if endYear == 0 {
		endYear = math.MaxInt
	}

	in := series.Between(samples, startYear, endYear)
	if len(in) == 0 {
		return first, last, false
	}

	return in[0], in[len(in)-1], true
}
