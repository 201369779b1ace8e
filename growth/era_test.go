package growth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthlaw/series"
)

func TestEraBounds(t *testing.T) {
	require.Equal(t, [][2]int{{1971, 1976}, {1976, 1981}, {1981, 1986}}, EraBounds(1971, 1985, 5))
	require.Equal(t, [][2]int{{2000, 2005}, {2005, 2010}}, EraBounds(2000, 2010, 5))
	require.Nil(t, EraBounds(2000, 2000, 5))
	require.Nil(t, EraBounds(2010, 2000, 5))
	require.Nil(t, EraBounds(2000, 2010, 0))
}

func TestEraBoundsTiling(t *testing.T) {
	for first := 1960; first < 1975; first++ {
		for last := first + 1; last < 2030; last += 3 {
			for length := 1; length <= 12; length++ {
				bounds := EraBounds(first, last, length)
				require.NotEmpty(t, bounds)
				require.Equal(t, first, bounds[0][0])
				for i, b := range bounds {
					require.Equal(t, length, b[1]-b[0])
					if i > 0 {
						require.Equal(t, bounds[i-1][1], b[0], "gap or overlap")
					}
				}
				tail := bounds[len(bounds)-1]
				require.Less(t, tail[0], last)
				require.GreaterOrEqual(t, tail[1], last)
			}
		}
	}
}

func TestAnalyzeEras(t *testing.T) {
	eras := Default().AnalyzeEras(cpuHistory()[:5], 5)

	// 1976-1981 holds only the 8086 and is absent
	require.Len(t, eras, 2)

	first := eras[0]
	require.Equal(t, "1971-1976", first.Label())
	require.Equal(t, 2, first.SampleCount)
	require.Equal(t, 2300.0, first.StartValue)
	require.Equal(t, 6000.0, first.EndValue)
	require.InDelta(t, EffectiveDoublingPeriod(1971, 2300, 1974, 6000), first.DoublingPeriod, 1e-12)
	require.InDelta(t, CAGR(2300, 6000, 3), first.AnnualGrowthRatePercent, 1e-12)
	require.Equal(t, AdherenceStrong, first.Adherence)

	second := eras[1]
	require.Equal(t, 1981, second.EraStart)
	require.Equal(t, 1986, second.EraEnd)
	require.Equal(t, 2, second.SampleCount)
	require.Equal(t, AdherenceModerate, second.Adherence)
}

func TestAnalyzeErasSharedYears(t *testing.T) {
	eras := Default().AnalyzeEras(cpuHistory(), 10)

	require.Len(t, eras, 3)
	require.Equal(t, 3, eras[0].SampleCount) // 1971, 1974, 1978
	require.Equal(t, 3, eras[1].SampleCount) // 1982, 1985, 1989
	require.Equal(t, 2, eras[2].SampleCount) // both 1993 samples
	require.Zero(t, eras[2].DoublingPeriod, "zero span degrades to zero")
	require.Equal(t, AdherenceWeak, eras[2].Adherence)
}

func TestAnalyzeErasDegenerate(t *testing.T) {
	a := Default()

	for _, samples := range [][]series.Sample{nil, {{Year: 2000, Value: 1}}} {
		eras := a.AnalyzeEras(samples, 5)
		require.NotNil(t, eras)
		require.Empty(t, eras)
	}

	require.Empty(t, a.AnalyzeEras(cpuHistory(), 0))
	require.Empty(t, a.AnalyzeEras(cpuHistory(), -5))
}
