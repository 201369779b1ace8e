package growth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthlaw/series"
)

func TestAnalyzeAdherenceOnTrack(t *testing.T) {
	samples := []series.Sample{
		{Label: "Intel 4004", Year: 1971, Value: 2300},
		{Label: "on schedule", Year: 1981, Value: 73600},
	}

	results := Default().AnalyzeAdherence(samples)
	require.Len(t, results, 1)

	r := results[0]
	require.Equal(t, "on schedule", r.SampleLabel)
	require.Equal(t, 1981, r.Year)
	require.Equal(t, 10, r.YearsFromBase)
	require.InDelta(t, 73600, r.PredictedValue, 1e-6)
	require.InDelta(t, 100.0, r.AccuracyPercent, 1e-9)
	require.InDelta(t, 2.0, r.EffectiveDoublingPeriod, 1e-9)
	require.Equal(t, 2.0, r.ModelDoublingPeriod)
	require.Equal(t, StatusOnTrack, r.Status)
}

func TestAnalyzeAdherenceStatus(t *testing.T) {
	samples := []series.Sample{
		{Label: "base", Year: 1971, Value: 2300},
		{Label: "ahead", Year: 1981, Value: 100000},
		{Label: "behind", Year: 1981, Value: 50000},
		{Label: "close", Year: 1981, Value: 73600 * 1.04},
	}

	results := Default().AnalyzeAdherence(samples)
	require.Len(t, results, 3)
	require.Equal(t, StatusAhead, results[0].Status)
	require.Equal(t, StatusBehind, results[1].Status)
	require.Equal(t, StatusOnTrack, results[2].Status)
}

func TestAnalyzeAdherenceUsesFirstSampleAsBase(t *testing.T) {
	results := Default().AnalyzeAdherence(cpuHistory())
	require.Len(t, results, len(cpuHistory())-1)

	for _, r := range results {
		require.Equal(t, r.Year-1971, r.YearsFromBase)
		require.InDelta(t, Default().Predict(2300, 1971, float64(r.Year), ModeConstant), r.PredictedValue, 1e-6)
	}
}

func TestAnalyzeAdherenceDegenerate(t *testing.T) {
	a := Default()

	for _, samples := range [][]series.Sample{nil, {}, {{Year: 2000, Value: 1}}} {
		results := a.AnalyzeAdherence(samples)
		require.NotNil(t, results)
		require.Empty(t, results)
	}

	// a zero base value cannot be projected, so every accuracy degrades to zero
	results := a.AnalyzeAdherence([]series.Sample{{Year: 2000}, {Year: 2004, Value: 10}})
	require.Len(t, results, 1)
	require.Zero(t, results[0].AccuracyPercent)
	require.Zero(t, results[0].EffectiveDoublingPeriod)
	require.Equal(t, StatusBehind, results[0].Status)
}

func TestCustomDoublingPeriodAdherence(t *testing.T) {
	a := MustNewAnalyzer(WithDoublingPeriod(1))
	results := a.AnalyzeAdherence([]series.Sample{{Year: 2000, Value: 1}, {Year: 2004, Value: 16}})

	require.Len(t, results, 1)
	require.InDelta(t, 100.0, results[0].AccuracyPercent, 1e-9)
	require.Equal(t, 1.0, results[0].ModelDoublingPeriod)
}
