package growth

import "github.com/arloliu/growthlaw/series"

// MinBaseDistance is the preferred minimum distance, in years, between a comparison's base
// sample and its target year.
const MinBaseDistance = 5

// Comparison reports how well the constant-mode law, started from an earlier sample,
// predicted the best sample observed in TargetYear.
type Comparison struct {
	TargetYear      int
	BaseLabel       string
	BaseYear        int
	BaseValue       float64
	TargetLabel     string
	ActualValue     float64
	PredictedValue  float64
	AccuracyPercent float64
	YearsPredicted  int
}

// Compare predicts targetYear from an automatically chosen base sample and compares the
// prediction with the largest value observed in targetYear.
//
// The base is the latest sample at least MinBaseDistance years before targetYear, falling back
// to the earliest sample before targetYear.
//
// Parameters:
//   - samples: Observations ordered by ascending year
//   - targetYear: Year whose best observation is compared with the prediction
//
// Returns:
//   - Comparison: Base, target, prediction and accuracy
//   - bool: false when samples hold nothing before targetYear or nothing at targetYear
//
// Example:
//
//	if cmp, ok := growth.Default().Compare(samples, 2000); ok {
//	    fmt.Printf("%s predicted from %s: %.1f%%\n", cmp.TargetLabel, cmp.BaseLabel, cmp.AccuracyPercent)
//	}
func (a *Analyzer) Compare(samples []series.Sample, targetYear int) (Comparison, bool) {
	var (
		base, target       series.Sample
		hasPast, hasTarget bool
	)

	for _, s := range samples {
		switch {
		case s.Year < targetYear:
			if !hasPast {
				base, hasPast = s, true
			} else if targetYear-s.Year >= MinBaseDistance {
				base = s
			}
		case s.Year == targetYear:
			if !hasTarget || s.Value > target.Value {
				target, hasTarget = s, true
			}
		}
	}
	if !hasPast || !hasTarget {
		return Comparison{}, false
	}

	predicted := a.Predict(base.Value, float64(base.Year), float64(targetYear), ModeConstant)

	return Comparison{
		TargetYear:      targetYear,
		BaseLabel:       base.Label,
		BaseYear:        base.Year,
		BaseValue:       base.Value,
		TargetLabel:     target.Label,
		ActualValue:     target.Value,
		PredictedValue:  predicted,
		AccuracyPercent: Accuracy(predicted, target.Value),
		YearsPredicted:  targetYear - base.Year,
	}, true
}
