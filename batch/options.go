package batch

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/arloliu/growthlaw/growth"
	"github.com/arloliu/growthlaw/internal/options"
)

// Config controls a batch run.
type Config struct {
	EraLength       int          // era bucket length in years, see growth.Analyzer.AnalyzeEras
	YearsAhead      int          // future predictions per series, 0 disables them
	Concurrency     int          // maximum number of series analyzed at once
	ComparisonYears []int        // target years for growth.Analyzer.Compare
	Logger          *slog.Logger // progress and degenerate-series diagnostics
}

func defaultConfig() Config {
	return Config{
		EraLength:   growth.DefaultEraLength,
		YearsAhead:  10,
		Concurrency: runtime.GOMAXPROCS(0),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option is a functional option for Run.
type Option = options.Option[*Config]

// WithEraLength sets the era bucket length in years.
func WithEraLength(years int) Option {
	return options.New(func(cfg *Config) error {
		if years <= 0 {
			return fmt.Errorf("era length must be positive, got %d", years)
		}
		cfg.EraLength = years

		return nil
	})
}

// WithYearsAhead sets how many yearly predictions follow each series' last sample.
// Zero disables future predictions.
func WithYearsAhead(years int) Option {
	return options.New(func(cfg *Config) error {
		if years < 0 {
			return fmt.Errorf("years ahead must not be negative, got %d", years)
		}
		cfg.YearsAhead = years

		return nil
	})
}

// WithConcurrency bounds the number of series analyzed in parallel.
func WithConcurrency(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("concurrency must be positive, got %d", n)
		}
		cfg.Concurrency = n

		return nil
	})
}

// WithComparisonYears asks every report to compare the law with the samples of these years.
func WithComparisonYears(years ...int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.ComparisonYears = append([]int(nil), years...)
	})
}

// WithLogger sets the logger used for progress messages. A nil logger keeps the default,
// which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}
