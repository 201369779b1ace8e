package growth

import "github.com/arloliu/growthlaw/series"

// AdherenceResult compares one observed sample with the constant-mode prediction made from the
// first sample of its series.
type AdherenceResult struct {
	SampleLabel     string
	Year            int
	ActualValue     float64
	PredictedValue  float64
	AccuracyPercent float64 // ActualValue / PredictedValue * 100
	YearsFromBase   int

	// EffectiveDoublingPeriod is the period actually realized since the base sample, reported
	// next to ModelDoublingPeriod for comparison. It is descriptive only.
	EffectiveDoublingPeriod float64
	ModelDoublingPeriod     float64

	Status Status
}

// AnalyzeAdherence walks samples and grades every sample after the first against the value the
// constant-mode law predicts from the first sample.
//
// Parameters:
//   - samples: Observations ordered by ascending year; the first one is the base
//
// Returns:
//   - []AdherenceResult: One result per sample after the first, empty for fewer than two samples
//
// Example:
//
//	for _, r := range growth.Default().AnalyzeAdherence(samples) {
//	    fmt.Printf("%s %d: %.1f%% %s\n", r.SampleLabel, r.Year, r.AccuracyPercent, r.Status)
//	}
func (a *Analyzer) AnalyzeAdherence(samples []series.Sample) []AdherenceResult {
	if len(samples) < 2 {
		return []AdherenceResult{}
	}

	base := samples[0]
	results := make([]AdherenceResult, 0, len(samples)-1)
	for _, s := range samples[1:] {
		predicted := a.Predict(base.Value, float64(base.Year), float64(s.Year), ModeConstant)
		accuracy := Accuracy(predicted, s.Value)

		results = append(results, AdherenceResult{
			SampleLabel:             s.Label,
			Year:                    s.Year,
			ActualValue:             s.Value,
			PredictedValue:          predicted,
			AccuracyPercent:         accuracy,
			YearsFromBase:           s.Year - base.Year,
			EffectiveDoublingPeriod: EffectiveDoublingPeriod(base.Year, base.Value, s.Year, s.Value),
			ModelDoublingPeriod:     a.cfg.DoublingPeriod,
			Status:                  statusForAccuracy(accuracy),
		})
	}

	return results
}
