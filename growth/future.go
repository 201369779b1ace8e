package growth

import (
	"math"

	"github.com/arloliu/growthlaw/series"
)

// PredictionRecord is the projection of a base sample to one future year.
type PredictionRecord struct {
	Year               int
	YearsFromBase      int
	PredictedPrimary   float64 // whole units, capped at the analyzer's MaxValue
	PredictedSecondary float64 // process scale rounded to 0.1, floored at MinScale; 0 when the base scale is unknown
	DoublingsFromBase  float64 // time-varying doublings since the base year, rounded to 0.01
	Confidence         Confidence
	Warning            Warning
	Note               string
}

// LimitFlags records which physical or practical limits a projection ran into.
type LimitFlags struct {
	ScaleFloored bool // the secondary metric reached its physical minimum
	ValueCapped  bool // the primary metric reached its practical ceiling
}

// projection is the raw, unrounded output of the first prediction stage.
type projection struct {
	primary   float64
	secondary float64
	doublings float64
	limits    LimitFlags
}

// PredictFuture projects base one year at a time for yearsAhead years.
//
// The primary metric follows the time-varying law. The secondary metric (base.Scale, e.g. a
// process node in nanometers) halves along the analyzer's scale schedule and never drops below
// MinScale. A base without a scale (Scale <= 0) projects no secondary metric and never reports
// the physical limit. Each record is graded by Grade.
//
// Parameters:
//   - base: Sample to project from, usually the latest observation of a series
//   - yearsAhead: Number of yearly records to produce, starting at base.Year+1
//
// Returns:
//   - []PredictionRecord: One record per year, empty when yearsAhead <= 0
//
// Example:
//
//	latest := samples[len(samples)-1]
//	for _, p := range growth.Default().PredictFuture(latest, 10) {
//	    fmt.Printf("%d: %.3g (%s) %s\n", p.Year, p.PredictedPrimary, p.Confidence, p.Note)
//	}
func (a *Analyzer) PredictFuture(base series.Sample, yearsAhead int) []PredictionRecord {
	if yearsAhead <= 0 {
		return []PredictionRecord{}
	}

	records := make([]PredictionRecord, 0, yearsAhead)
	for offset := 1; offset <= yearsAhead; offset++ {
		target := base.Year + offset
		p := a.project(base, target)
		confidence, warning := Grade(offset, target, p.limits)

		records = append(records, PredictionRecord{
			Year:               target,
			YearsFromBase:      offset,
			PredictedPrimary:   math.Trunc(p.primary),
			PredictedSecondary: math.Round(p.secondary*10) / 10,
			DoublingsFromBase:  math.Round(p.doublings*100) / 100,
			Confidence:         confidence,
			Warning:            warning,
			Note:               Note(warning),
		})
	}

	return records
}

// project is the first stage of PredictFuture: raw values and limit flags for one target year.
func (a *Analyzer) project(base series.Sample, target int) projection {
	primary := a.Predict(base.Value, float64(base.Year), float64(target), ModeTimeVarying)
	secondary := a.PredictScale(base.Scale, base.Year, target)

	return projection{
		primary:   primary,
		secondary: secondary,
		doublings: a.cfg.Schedule.Doublings(base.Year, target),
		limits: LimitFlags{
			ScaleFloored: base.Scale > 0 && secondary <= a.cfg.MinScale,
			ValueCapped:  a.IsCapped(primary),
		},
	}
}

// ScaleHalvings returns how many times the secondary metric halves between baseYear and
// targetYear.
//
// The halving rate blends three regimes: one halving per 2 years before 2025, one per 3 years
// from 2025 through 2029 and one per 5 years from 2030. Each calendar year contributes the
// rate of the regime it falls in, so the accumulated count is continuous across 2025 and 2030
// whatever the base year, and a base year inside a later regime never credits earlier regimes.
func (a *Analyzer) ScaleHalvings(baseYear, targetYear int) float64 {
	return a.cfg.ScaleSchedule.Doublings(baseYear, targetYear)
}

// PredictScale projects the secondary metric from baseScale in baseYear to targetYear and
// floors it at MinScale. An unknown scale (baseScale <= 0) stays 0.
func (a *Analyzer) PredictScale(baseScale float64, baseYear, targetYear int) float64 {
	if baseScale <= 0 {
		return 0
	}
	scale := baseScale / math.Exp2(a.ScaleHalvings(baseYear, targetYear))

	return math.Max(scale, a.cfg.MinScale)
}
