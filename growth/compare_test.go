package growth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	cmp, ok := Default().Compare(cpuHistory(), 1993)
	require.True(t, ok)

	// 1989 is only 4 years away, so the 80386 is the base
	require.Equal(t, "Intel 80386", cmp.BaseLabel)
	require.Equal(t, 1985, cmp.BaseYear)
	require.Equal(t, 8, cmp.YearsPredicted)

	// the Pentium outperforms the Cyrix in the same year
	require.Equal(t, "Intel Pentium", cmp.TargetLabel)
	require.Equal(t, 3100000.0, cmp.ActualValue)
	require.InDelta(t, 275000*16, cmp.PredictedValue, 1e-6)
	require.InDelta(t, 3100000.0/4400000*100, cmp.AccuracyPercent, 1e-9)
}

func TestCompareFallsBackToEarliestSample(t *testing.T) {
	cmp, ok := Default().Compare(cpuHistory(), 1974)
	require.True(t, ok)
	require.Equal(t, "Intel 4004", cmp.BaseLabel)
	require.Equal(t, 3, cmp.YearsPredicted)
	require.Equal(t, "Intel 8080", cmp.TargetLabel)
}

func TestCompareMissing(t *testing.T) {
	a := Default()

	_, ok := a.Compare(cpuHistory(), 1990)
	require.False(t, ok, "no sample in target year")

	_, ok = a.Compare(cpuHistory(), 1971)
	require.False(t, ok, "no sample before target year")

	_, ok = a.Compare(nil, 2000)
	require.False(t, ok)
}
