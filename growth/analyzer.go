package growth

import (
	"github.com/arloliu/growthlaw/internal/options"
)

// Analyzer evaluates sample series against the doubling law.
//
// An Analyzer only holds its Config, which never changes after construction, so a single
// instance is safe for concurrent use by any number of goroutines.
type Analyzer struct {
	cfg Config
}

var defaultAnalyzer = &Analyzer{cfg: DefaultConfig()}

// Default returns the shared analyzer with a two-year doubling period.
func Default() *Analyzer {
	return defaultAnalyzer
}

// NewAnalyzer creates an analyzer from DefaultConfig adjusted by opts.
//
// Example:
//
//	a, err := growth.NewAnalyzer(growth.WithDoublingPeriod(1.5))
//	if err != nil {
//	    return err
//	}
//	predicted := a.Predict(2300, 1971, 1981, growth.ModeConstant)
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Analyzer{cfg: cfg}, nil
}

// MustNewAnalyzer is like NewAnalyzer but panics if an option is invalid.
func MustNewAnalyzer(opts ...Option) *Analyzer {
	a, err := NewAnalyzer(opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// Config returns a copy of the analyzer configuration.
func (a *Analyzer) Config() Config {
	cfg := a.cfg
	cfg.Schedule = a.cfg.Schedule.clone()
	cfg.ScaleSchedule = a.cfg.ScaleSchedule.clone()

	return cfg
}

// DoublingPeriod returns the fixed doubling period used by ModeConstant.
func (a *Analyzer) DoublingPeriod() float64 {
	return a.cfg.DoublingPeriod
}

// PeriodForYear returns the time-varying doubling period in effect during year.
func (a *Analyzer) PeriodForYear(year int) float64 {
	return a.cfg.Schedule.PeriodForYear(year)
}
