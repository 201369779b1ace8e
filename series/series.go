// Package series holds the sample data model consumed by the growth analyses and a compact,
// checksummed binary codec for shipping series between the data loader and the analyzer.
package series

import (
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/growthlaw/internal/hash"
)

// Sample is one observation of a metric.
type Sample struct {
	Label string  // name of the observed system, e.g. "Intel 4004"
	Year  int     // calendar year of the observation
	Value float64 // primary metric, e.g. transistor count
	Scale float64 // optional secondary metric, e.g. process node in nm; 0 when unknown
}

// Series is a named metric history ordered by ascending year.
// Several samples may share a year.
type Series struct {
	Name    string
	Samples []Sample
}

// ErrUnsorted is returned by Validate when samples are not ordered by ascending year.
var ErrUnsorted = errors.New("samples are not ordered by year")

// ID returns the series identifier derived from its name.
func (s Series) ID() uint64 {
	return hash.MetricID(s.Name)
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Samples)
}

// Validate reports ErrUnsorted when samples are not in ascending year order.
// Loaders call it before handing a series to the analyzer, which assumes the order.
func Validate(samples []Sample) error {
	for i := 1; i < len(samples); i++ {
		if samples[i].Year < samples[i-1].Year {
			return fmt.Errorf("%w: %d (%s) follows %d (%s)", ErrUnsorted,
				samples[i].Year, samples[i].Label, samples[i-1].Year, samples[i-1].Label)
		}
	}

	return nil
}

// Sorted returns a copy of samples ordered by year. Samples sharing a year keep their order.
func Sorted(samples []Sample) []Sample {
	out := slices.Clone(samples)
	slices.SortStableFunc(out, func(a, b Sample) int {
		return a.Year - b.Year
	})

	return out
}

// Between returns the samples whose year lies in [startYear, endYear].
func Between(samples []Sample, startYear, endYear int) []Sample {
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if s.Year >= startYear && s.Year <= endYear {
			out = append(out, s)
		}
	}

	return out
}

// Summary describes the extent of a series.
type Summary struct {
	Count      int
	FirstYear  int
	LastYear   int
	FirstLabel string
	LastLabel  string
}

// YearRange returns the summary span as "first-last", or "" for an empty series.
func (s Summary) YearRange() string {
	if s.Count == 0 {
		return ""
	}

	return fmt.Sprintf("%d-%d", s.FirstYear, s.LastYear)
}

// Summarize returns the extent of s. An empty series yields the zero Summary.
func Summarize(s Series) Summary {
	if len(s.Samples) == 0 {
		return Summary{}
	}

	first, last := s.Samples[0], s.Samples[len(s.Samples)-1]

	return Summary{
		Count:      len(s.Samples),
		FirstYear:  first.Year,
		LastYear:   last.Year,
		FirstLabel: first.Label,
		LastLabel:  last.Label,
	}
}
