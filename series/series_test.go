package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthlaw/internal/hash"
)

func cpuSamples() []Sample {
	return []Sample{
		{Label: "Intel 4004", Year: 1971, Value: 2300, Scale: 10000},
		{Label: "Intel 8080", Year: 1974, Value: 6000, Scale: 6000},
		{Label: "Intel 8086", Year: 1978, Value: 29000, Scale: 3000},
		{Label: "Intel 80286", Year: 1982, Value: 134000, Scale: 1500},
		{Label: "Intel 80386", Year: 1985, Value: 275000, Scale: 1000},
	}
}

func TestSeriesID(t *testing.T) {
	s := Series{Name: "CPU_Transistors"}
	require.Equal(t, hash.MetricID("cpu_transistors"), s.ID())
	require.NotEqual(t, s.ID(), Series{Name: "ram_mb"}.ID())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(nil))
	require.NoError(t, Validate(cpuSamples()))

	sameYear := []Sample{{Year: 1990, Value: 1}, {Year: 1990, Value: 2}}
	require.NoError(t, Validate(sameYear))

	unsorted := []Sample{{Label: "b", Year: 1990}, {Label: "a", Year: 1985}}
	err := Validate(unsorted)
	require.ErrorIs(t, err, ErrUnsorted)
	require.Contains(t, err.Error(), "1985 (a) follows 1990 (b)")
}

func TestSorted(t *testing.T) {
	in := []Sample{
		{Label: "c", Year: 2000},
		{Label: "a", Year: 1990},
		{Label: "b1", Year: 1995},
		{Label: "b2", Year: 1995},
	}

	out := Sorted(in)
	require.NoError(t, Validate(out))
	require.Equal(t, []string{"a", "b1", "b2", "c"}, []string{out[0].Label, out[1].Label, out[2].Label, out[3].Label})
	require.Equal(t, "c", in[0].Label, "input must not be reordered")
}

func TestBetween(t *testing.T) {
	got := Between(cpuSamples(), 1974, 1982)
	require.Len(t, got, 3)
	require.Equal(t, 1974, got[0].Year)
	require.Equal(t, 1982, got[2].Year)

	require.Empty(t, Between(cpuSamples(), 2000, 2010))
}

func TestSummarize(t *testing.T) {
	sum := Summarize(Series{Name: "cpu", Samples: cpuSamples()})
	require.Equal(t, Summary{
		Count:      5,
		FirstYear:  1971,
		LastYear:   1985,
		FirstLabel: "Intel 4004",
		LastLabel:  "Intel 80386",
	}, sum)
	require.Equal(t, "1971-1985", sum.YearRange())

	empty := Summarize(Series{Name: "none"})
	require.Zero(t, empty)
	require.Empty(t, empty.YearRange())
}
