// Package growth analyzes hardware capability series against an empirical doubling law whose
// doubling period slows down over calendar time.
//
// The package answers two questions about an ordered series of (year, value) samples:
//
//   - What compound growth was actually realized between two points (Compute, AnalyzeRange)?
//   - What does the doubling law predict for any past or future year (Analyzer.Predict)?
//
// # The Model
//
// The law is evaluated in two modes:
//
//   - **Constant**: value * 2^(years / DoublingPeriod), with a configurable fixed period (2 years by default)
//   - **Time-varying**: the value is compounded one calendar year at a time, using the period
//     that Schedule assigns to each year
//
// The default schedule encodes the observed slowdown:
//
//	< 2020      2.0 years per doubling
//	2020-2024   2.5
//	2025-2029   3.0
//	2030-2034   4.0
//	>= 2035     5.0
//
// Every prediction is capped at a practical ceiling (1e15 by default). Secondary scale
// predictions, such as a process node that halves as the primary metric doubles, are floored
// at a physical minimum (0.5 by default).
//
// # Analyses
//
//	a := growth.Default()
//
//	adherence := a.AnalyzeAdherence(samples)      // every sample vs. the law from the first sample
//	eras := a.AnalyzeEras(samples, 5)             // realized doubling period per 5-year era
//	future := a.PredictFuture(samples[len(samples)-1], 10)
//	cmp, ok := a.Compare(samples, 2000)           // how well the law predicted year 2000
//
// # Degenerate Input
//
// Analyses never return errors. Empty or single-sample series produce empty slices, undefined
// growth is reported as zero, and out-of-model projections are reported through Confidence and
// Warning labels, so a batch over many metrics is never interrupted by one bad series.
//
// Samples must be ordered by ascending year; the package does not sort them.
//
// # Concurrency
//
// An Analyzer is immutable after NewAnalyzer returns and every method is a pure function of its
// arguments, so one Analyzer can serve any number of goroutines.
package growth
