package growth

import (
	"errors"
	"fmt"
	"math"
)

// Breakpoint switches a Schedule to a new doubling period starting at year From.
type Breakpoint struct {
	From   int     // First calendar year the period applies to
	Period float64 // Years per doubling from From onwards
}

// Schedule maps a calendar year to the number of years one doubling takes at that point in history.
//
// Years before the first breakpoint use Initial. Breakpoints must be ordered by strictly
// increasing From and must never shorten the period, which encodes the assumption that
// growth only decelerates.
type Schedule struct {
	Initial     float64
	Breakpoints []Breakpoint
}

var (
	// ErrScheduleUnordered is returned when breakpoint years are not strictly increasing.
	ErrScheduleUnordered = errors.New("schedule breakpoints are not ordered by year")
	// ErrScheduleDecreasing is returned when a later breakpoint shortens the doubling period.
	ErrScheduleDecreasing = errors.New("schedule period decreases over time")
	// ErrSchedulePeriod is returned when a period is not strictly positive.
	ErrSchedulePeriod = errors.New("schedule period must be positive")
)

// DefaultSchedule returns the slowdown table of the doubling law:
//
//	< 2020      2.0 years
//	2020-2024   2.5 years
//	2025-2029   3.0 years
//	2030-2034   4.0 years
//	>= 2035     5.0 years
func DefaultSchedule() Schedule {
	return Schedule{
		Initial: 2.0,
		Breakpoints: []Breakpoint{
			{From: 2020, Period: 2.5},
			{From: 2025, Period: 3.0},
			{From: 2030, Period: 4.0},
			{From: 2035, Period: 5.0},
		},
	}
}

// ScaleSchedule returns the halving table of the secondary (process scale) metric.
// The scale halves every 2 years before 2025, every 3 years until 2030 and every 5 years afterwards.
func ScaleSchedule() Schedule {
	return Schedule{
		Initial: 2.0,
		Breakpoints: []Breakpoint{
			{From: 2025, Period: 3.0},
			{From: 2030, Period: 5.0},
		},
	}
}

// PeriodForYear returns the doubling period in effect during year.
func (s Schedule) PeriodForYear(year int) float64 {
	period := s.Initial
	for _, bp := range s.Breakpoints {
		if year < bp.From {
			break
		}
		period = bp.Period
	}

	return period
}

// Doublings returns the number of doublings accumulated over the whole years [from, to),
// i.e. the sum of 1/PeriodForYear(y). When to < from the result is the negated sum over [to, from).
func (s Schedule) Doublings(from, to int) float64 {
	return s.walk(float64(from), float64(to))
}

// walk returns the doublings accumulated by stepping from one year to another in steps of at
// most one year, each step charged at the period of the calendar year it starts in (or, walking
// backwards, the year it steps into). The period is constant between breakpoints, so each
// segment of the schedule contributes (steps in segment)/period and the cost is independent of
// the span.
func (s Schedule) walk(from, to float64) float64 {
	if from == to {
		return 0
	}

	forward := to > from
	dist := math.Abs(to - from)
	full := math.Floor(dist)
	frac := dist - full

	var total float64
	lo := math.Inf(-1)
	period := s.Initial
	for i := 0; i <= len(s.Breakpoints); i++ {
		hi := math.Inf(1)
		if i < len(s.Breakpoints) {
			hi = float64(s.Breakpoints[i].From)
		}
		total += stepsIn(from, full, lo, hi, forward) / period

		if i < len(s.Breakpoints) {
			lo, period = hi, s.Breakpoints[i].Period
		}
	}

	if frac > 0 {
		if forward {
			total += frac / s.periodAt(from+full)
		} else {
			total += frac / s.periodAt(to)
		}
	}
	if !forward {
		return -total
	}

	return total
}

// stepsIn counts the whole steps j in [0, full) whose calendar year lies in [lo, hi).
// Forward step j starts at from+j; backward step j steps into from-1-j.
func stepsIn(from, full, lo, hi float64, forward bool) float64 {
	var first, last float64
	if forward {
		first = math.Ceil(lo - from)
		last = math.Ceil(hi-from) - 1
	} else {
		first = math.Floor(from-1-hi) + 1
		last = math.Floor(from - 1 - lo)
	}
	first = math.Max(first, 0)
	last = math.Min(last, full-1)
	if last < first {
		return 0
	}

	return last - first + 1
}

// periodAt is PeriodForYear for a possibly fractional year; floor(x) >= From exactly when x >= From.
func (s Schedule) periodAt(x float64) float64 {
	period := s.Initial
	for _, bp := range s.Breakpoints {
		if x < float64(bp.From) {
			break
		}
		period = bp.Period
	}

	return period
}

// Validate reports whether the schedule is usable by the extrapolator.
func (s Schedule) Validate() error {
	if s.Initial <= 0 {
		return fmt.Errorf("%w: initial period %g", ErrSchedulePeriod, s.Initial)
	}

	prev := s.Initial
	for i, bp := range s.Breakpoints {
		if bp.Period <= 0 {
			return fmt.Errorf("%w: breakpoint %d has period %g", ErrSchedulePeriod, i, bp.Period)
		}
		if i > 0 && bp.From <= s.Breakpoints[i-1].From {
			return fmt.Errorf("%w: %d follows %d", ErrScheduleUnordered, bp.From, s.Breakpoints[i-1].From)
		}
		if bp.Period < prev {
			return fmt.Errorf("%w: %g at %d after %g", ErrScheduleDecreasing, bp.Period, bp.From, prev)
		}
		prev = bp.Period
	}

	return nil
}

// clone returns a deep copy so analyzers never share breakpoint storage with callers.
func (s Schedule) clone() Schedule {
	out := Schedule{Initial: s.Initial}
	if len(s.Breakpoints) > 0 {
		out.Breakpoints = make([]Breakpoint, len(s.Breakpoints))
		copy(out.Breakpoints, s.Breakpoints)
	}

	return out
}
