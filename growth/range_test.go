package growth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthlaw/series"
)

func TestAnalyzeRange(t *testing.T) {
	a := Default()

	r, ok := a.AnalyzeRange("cpu", cpuHistory(), 1974, 1985)
	require.True(t, ok)
	require.Equal(t, 1974, r.StartYear)
	require.Equal(t, 1985, r.EndYear)
	require.Equal(t, 6000.0, r.StartValue)
	require.Equal(t, 275000.0, r.EndValue)
	require.Nil(t, r.PredictedValue)

	// bounds need not coincide with sample years
	r, ok = a.AnalyzeRange("cpu", cpuHistory(), 1972, 1984)
	require.True(t, ok)
	require.Equal(t, 1974, r.StartYear)
	require.Equal(t, 1982, r.EndYear)
}

func TestAnalyzeRangeOpenBounds(t *testing.T) {
	a := Default()

	r, ok := a.AnalyzeRange("cpu", cpuHistory(), 0, 0)
	require.True(t, ok)
	require.Equal(t, 1971, r.StartYear)
	require.Equal(t, 1993, r.EndYear)
	require.Equal(t, 3100000.0, r.EndValue, "last sample of the final year")

	r, ok = a.AnalyzeRange("cpu", cpuHistory(), 1980, 0)
	require.True(t, ok)
	require.Equal(t, 1982, r.StartYear)
	require.Equal(t, 1993, r.EndYear)

	r, ok = a.AnalyzeRange("cpu", cpuHistory(), 0, 1980)
	require.True(t, ok)
	require.Equal(t, 1971, r.StartYear)
	require.Equal(t, 1978, r.EndYear)
}

func TestAnalyzeRangeEmpty(t *testing.T) {
	_, ok := Default().AnalyzeRange("cpu", cpuHistory(), 2000, 2010)
	require.False(t, ok)

	_, ok = Default().AnalyzeRange("cpu", nil, 0, 0)
	require.False(t, ok)
}

func TestAnalyzeLaw(t *testing.T) {
	samples := []series.Sample{
		{Label: "Intel 4004", Year: 1971, Value: 2300},
		{Label: "on schedule", Year: 1981, Value: 73600},
	}

	r, ok := Default().AnalyzeLaw("cpu", samples, 0, 0)
	require.True(t, ok)
	require.InDelta(t, 32, r.GrowthFactor, 1e-12)
	require.NotNil(t, r.PredictedValue)
	require.NotNil(t, r.PredictedAccuracy)
	require.InDelta(t, 73600, *r.PredictedValue, 1e-6)
	require.InDelta(t, 100.0, *r.PredictedAccuracy, 1e-9)

	_, ok = Default().AnalyzeLaw("cpu", samples, 1990, 2000)
	require.False(t, ok)
}
