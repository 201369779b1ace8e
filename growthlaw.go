// Package growthlaw measures how hardware capability series follow an empirical doubling law
// and projects them forward under a law whose doubling period slows over calendar time.
//
// The module is organized as a small analytics core plus the plumbing needed to move series
// around:
//
//   - growth: CAGR, the constant and time-varying extrapolator, adherence, era and future analyses
//   - series: the sample data model and a compact, checksummed binary codec
//   - batch: parallel analysis of many series with structured logging
//   - compress: Zstd, S2 and LZ4 codecs used by the series codec
//
// # Core Features
//
//   - Piecewise doubling schedule (2.0 → 5.0 years) with per-year compounding
//   - Practical ceiling on predicted values and a physical floor on process scale
//   - Confidence and warning grading for projections beyond the expected end of the law
//   - Degenerate series never fail; they produce empty or zero-valued results
//   - Hash-based series identification (64-bit xxHash64)
//
// # Basic Usage
//
//	samples := []growthlaw.Sample{
//	    {Label: "Intel 4004", Year: 1971, Value: 2300, Scale: 10000},
//	    {Label: "Intel 80386", Year: 1985, Value: 275000, Scale: 1000},
//	}
//
//	a := growthlaw.Default()
//	adherence := a.AnalyzeAdherence(samples)
//	future := a.PredictFuture(samples[len(samples)-1], 10)
//
// Shipping a series between processes:
//
//	payload, _ := growthlaw.EncodeSeries(growthlaw.Series{Name: "cpu_transistors", Samples: samples})
//	decoded, _ := growthlaw.DecodeSeries(payload)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the growth and series packages.
// For custom schedules, codec options or batch runs, use those packages directly.
package growthlaw

import (
	"github.com/arloliu/growthlaw/format"
	"github.com/arloliu/growthlaw/growth"
	"github.com/arloliu/growthlaw/internal/hash"
	"github.com/arloliu/growthlaw/series"
)

type (
	// Sample is one observation of a metric. See series.Sample.
	Sample = series.Sample
	// Series is a named, year-ordered metric history. See series.Series.
	Series = series.Series
	// Analyzer evaluates series against the doubling law. See growth.Analyzer.
	Analyzer = growth.Analyzer
)

// Default returns the shared analyzer with the classic two-year doubling period and the
// default slowdown schedule.
func Default() *Analyzer {
	return growth.Default()
}

// NewAnalyzer creates an analyzer with custom settings.
//
// Available options:
//   - growth.WithDoublingPeriod(years)
//   - growth.WithSchedule(growth.Schedule{...})
//   - growth.WithMaxValue(v)
//   - growth.WithMinScale(v)
//
// Example:
//
//	a, err := growthlaw.NewAnalyzer(growth.WithDoublingPeriod(1.5))
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewAnalyzer(opts ...growth.Option) (*Analyzer, error) {
	return growth.NewAnalyzer(opts...)
}

// EncodeSeries serializes s with Zstd compression and little-endian byte order.
// Use series.Encode for other layouts.
func EncodeSeries(s Series) ([]byte, error) {
	return series.Encode(s, series.WithCompression(format.CompressionZstd), series.WithLittleEndian())
}

// DecodeSeries parses a payload produced by EncodeSeries or series.Encode.
func DecodeSeries(data []byte) (Series, error) {
	return series.Decode(data)
}

// SeriesID returns the 64-bit identifier of a series name. Names are matched
// case-insensitively and surrounding whitespace is ignored.
//
// Example:
//
//	id := growthlaw.SeriesID("cpu_transistors")
//	byID[id] = report
func SeriesID(name string) uint64 {
	return hash.MetricID(name)
}
