package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/growthlaw/internal/options"
)

// Model constants of the doubling law. They are part of the empirical law being encoded,
// not runtime configuration.
const (
	// DefaultDoublingPeriod is the classic two-year doubling period used by ModeConstant.
	DefaultDoublingPeriod = 2.0
	// DefaultMaxValue is the practical ceiling applied to every primary-metric prediction.
	DefaultMaxValue = 1e15
	// DefaultMinScale is the physical floor of the secondary (process scale) metric.
	DefaultMinScale = 0.5
	// PracticalLimitYear is the year after which the law is expected to slow significantly.
	PracticalLimitYear = 2030
	// MaxReasonableYears is the prediction horizon beyond which results are highly speculative.
	MaxReasonableYears = 20
)

var (
	// ErrInvalidDoublingPeriod is returned when the fixed doubling period is not a positive finite number.
	ErrInvalidDoublingPeriod = errors.New("doubling period must be a positive finite number")
	// ErrInvalidLimit is returned when a cap or floor is not a positive finite number.
	ErrInvalidLimit = errors.New("limit must be a positive finite number")
)

// Config holds the immutable parameters of an Analyzer.
type Config struct {
	DoublingPeriod float64  // Years per doubling in ModeConstant
	Schedule       Schedule // Slowdown table used by ModeTimeVarying
	ScaleSchedule  Schedule // Halving table of the secondary metric
	MaxValue       float64  // Ceiling for primary-metric predictions
	MinScale       float64  // Floor for secondary-metric predictions
}

// DefaultConfig returns the configuration of the default analyzer.
func DefaultConfig() Config {
	return Config{
		DoublingPeriod: DefaultDoublingPeriod,
		Schedule:       DefaultSchedule(),
		ScaleSchedule:  ScaleSchedule(),
		MaxValue:       DefaultMaxValue,
		MinScale:       DefaultMinScale,
	}
}

// Option is a functional option for NewAnalyzer.
type Option = options.Option[*Config]

// WithDoublingPeriod sets the fixed doubling period, in years, used by ModeConstant.
func WithDoublingPeriod(years float64) Option {
	return options.New(func(cfg *Config) error {
		if !isPositiveFinite(years) {
			return fmt.Errorf("%w: %g", ErrInvalidDoublingPeriod, years)
		}
		cfg.DoublingPeriod = years

		return nil
	})
}

// WithSchedule replaces the slowdown table used by ModeTimeVarying.
func WithSchedule(s Schedule) Option {
	return options.New(func(cfg *Config) error {
		if err := s.Validate(); err != nil {
			return err
		}
		cfg.Schedule = s.clone()

		return nil
	})
}

// WithMaxValue overrides the ceiling applied to primary-metric predictions.
func WithMaxValue(v float64) Option {
	return options.New(func(cfg *Config) error {
		if !isPositiveFinite(v) {
			return fmt.Errorf("%w: max value %g", ErrInvalidLimit, v)
		}
		cfg.MaxValue = v

		return nil
	})
}

// WithMinScale overrides the floor applied to secondary-metric predictions.
func WithMinScale(v float64) Option {
	return options.New(func(cfg *Config) error {
		if !isPositiveFinite(v) {
			return fmt.Errorf("%w: min scale %g", ErrInvalidLimit, v)
		}
		cfg.MinScale = v

		return nil
	})
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
