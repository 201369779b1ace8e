// Package batch runs the full set of growth analyses over many metric series in parallel.
//
// A single degenerate series (empty, one sample, zero start value) never interrupts the run;
// it yields a Report with empty sections. Only cancellation of the context stops a run early.
package batch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/growthlaw/growth"
	"github.com/arloliu/growthlaw/internal/options"
	"github.com/arloliu/growthlaw/series"
)

// Report gathers every analysis of one series.
type Report struct {
	Name     string
	SeriesID uint64
	Summary  series.Summary

	// Growth is the realized growth over the whole series with the constant-mode prediction
	// for its last year. HasGrowth is false for an empty series.
	Growth    growth.GrowthResult
	HasGrowth bool

	Adherence   []growth.AdherenceResult
	Eras        []growth.EraResult
	Future      []growth.PredictionRecord // projected from the last sample
	Comparisons []growth.Comparison       // only the requested years that resolved
}

// Degenerate reports whether the series was too short for any analysis.
func (r Report) Degenerate() bool {
	return r.Summary.Count < 2
}

// Run analyzes every series with a and returns one report per series, in input order.
//
// Example:
//
//	reports, err := batch.Run(ctx, growth.Default(), metrics,
//	    batch.WithYearsAhead(15),
//	    batch.WithComparisonYears(2000, 2010),
//	    batch.WithLogger(logger),
//	)
func Run(ctx context.Context, a *growth.Analyzer, metrics []series.Series, opts ...Option) ([]Report, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if a == nil {
		a = growth.Default()
	}

	start := time.Now()
	reports := make([]Report, len(metrics))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i := range metrics {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = analyze(a, metrics[i], &cfg)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cfg.Logger.Warn("batch analysis cancelled", "series", len(metrics), "error", err)
		return nil, err
	}

	cfg.Logger.Info("batch analysis finished",
		"series", len(metrics),
		"concurrency", cfg.Concurrency,
		"elapsed", time.Since(start))

	return reports, nil
}

func analyze(a *growth.Analyzer, s series.Series, cfg *Config) Report {
	logger := cfg.Logger.With("series", s.Name)

	r := Report{
		Name:     s.Name,
		SeriesID: s.ID(),
		Summary:  series.Summarize(s),
	}
	r.Growth, r.HasGrowth = a.AnalyzeLaw(s.Name, s.Samples, 0, 0)
	r.Adherence = a.AnalyzeAdherence(s.Samples)
	r.Eras = a.AnalyzeEras(s.Samples, cfg.EraLength)

	if r.Summary.Count > 0 {
		r.Future = a.PredictFuture(s.Samples[len(s.Samples)-1], cfg.YearsAhead)
	} else {
		r.Future = []growth.PredictionRecord{}
	}

	r.Comparisons = make([]growth.Comparison, 0, len(cfg.ComparisonYears))
	for _, year := range cfg.ComparisonYears {
		if cmp, ok := a.Compare(s.Samples, year); ok {
			r.Comparisons = append(r.Comparisons, cmp)
		} else {
			logger.Debug("comparison year unresolved", "year", year)
		}
	}

	if r.Degenerate() {
		logger.Debug("series too short for growth analysis", "samples", r.Summary.Count)
		return r
	}

	logger.Debug("series analyzed",
		"years", r.Summary.YearRange(),
		"samples", r.Summary.Count,
		"cagr_percent", r.Growth.CAGRPercent,
		"eras", len(r.Eras))

	return r
}
