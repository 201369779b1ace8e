package growth

import (
	"fmt"

	"github.com/arloliu/growthlaw/series"
)

// DefaultEraLength is the era length, in years, used when callers have no preference.
const DefaultEraLength = 5

// EraResult summarizes growth inside one fixed-length calendar bucket [EraStart, EraEnd).
type EraResult struct {
	EraStart                int
	EraEnd                  int
	SampleCount             int
	DoublingPeriod          float64 // effective period between the era's first and last sample
	AnnualGrowthRatePercent float64 // CAGR between the era's first and last sample
	Adherence               Adherence
	StartValue              float64
	EndValue                float64
}

// Label returns the era as "start-end".
func (e EraResult) Label() string {
	return fmt.Sprintf("%d-%d", e.EraStart, e.EraEnd)
}

// EraBounds returns the half-open buckets [start, start+eraLength) tiling [firstYear, lastYear).
// It returns nil when eraLength <= 0 or firstYear >= lastYear.
func EraBounds(firstYear, lastYear, eraLength int) [][2]int {
	if eraLength <= 0 || firstYear >= lastYear {
		return nil
	}

	bounds := make([][2]int, 0, (lastYear-firstYear)/eraLength+1)
	for start := firstYear; start < lastYear; start += eraLength {
		bounds = append(bounds, [2]int{start, start + eraLength})
	}

	return bounds
}

// AnalyzeEras partitions samples into eras of eraLength years starting at the first sample's
// year and analyzes every era holding at least two samples. Eras with fewer samples are
// skipped, not reported as zero-valued records.
//
// Parameters:
//   - samples: Observations ordered by ascending year
//   - eraLength: Bucket length in years, see DefaultEraLength
//
// Returns:
//   - []EraResult: Analyzed eras in calendar order; empty when eraLength <= 0 or no era has two samples
//
// Example:
//
//	for _, era := range growth.Default().AnalyzeEras(samples, growth.DefaultEraLength) {
//	    fmt.Printf("%s: doubling every %.2f years (%s)\n", era.Label(), era.DoublingPeriod, era.Adherence)
//	}
func (a *Analyzer) AnalyzeEras(samples []series.Sample, eraLength int) []EraResult {
	results := []EraResult{}
	if len(samples) < 2 {
		return results
	}

	// samples are ordered, so each era is a contiguous run starting where the previous one ended
	idx := 0
	for _, b := range EraBounds(samples[0].Year, samples[len(samples)-1].Year, eraLength) {
		for idx < len(samples) && samples[idx].Year < b[0] {
			idx++
		}
		end := idx
		for end < len(samples) && samples[end].Year < b[1] {
			end++
		}
		era := samples[idx:end]
		idx = end

		if len(era) < 2 {
			continue
		}

		first, last := era[0], era[len(era)-1]
		period := EffectiveDoublingPeriod(first.Year, first.Value, last.Year, last.Value)
		results = append(results, EraResult{
			EraStart:                b[0],
			EraEnd:                  b[1],
			SampleCount:             len(era),
			DoublingPeriod:          period,
			AnnualGrowthRatePercent: CAGR(first.Value, last.Value, last.Year-first.Year),
			Adherence:               adherenceForPeriod(period),
			StartValue:              first.Value,
			EndValue:                last.Value,
		})
	}

	return results
}
