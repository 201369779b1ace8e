package growth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSchedulePeriodForYear(t *testing.T) {
	s := DefaultSchedule()

	tests := []struct {
		year   int
		period float64
	}{
		{1971, 2.0},
		{2019, 2.0},
		{2020, 2.5},
		{2024, 2.5},
		{2025, 3.0},
		{2029, 3.0},
		{2030, 4.0},
		{2034, 4.0},
		{2035, 5.0},
		{2100, 5.0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.period, s.PeriodForYear(tt.year), "year %d", tt.year)
	}
}

func TestScheduleNeverAccelerates(t *testing.T) {
	for _, s := range []Schedule{DefaultSchedule(), ScaleSchedule()} {
		require.NoError(t, s.Validate())
		for y := 1900; y < 2200; y++ {
			require.GreaterOrEqual(t, s.PeriodForYear(y+1), s.PeriodForYear(y), "year %d", y)
		}
	}
}

func TestScheduleDoublings(t *testing.T) {
	s := DefaultSchedule()

	// 2018 and 2019 at 2.0, 2020 and 2021 at 2.5
	require.InDelta(t, 1.8, s.Doublings(2018, 2022), 1e-12)
	require.InDelta(t, -1.8, s.Doublings(2022, 2018), 1e-12)
	require.Zero(t, s.Doublings(2022, 2022))

	// Long spans are charged at the period of each segment they cross.
	require.InDelta(t, 20*0.5+5*0.4+5/3.0+5*0.25+float64((1<<30)-2035)/5, s.Doublings(2000, 1<<30), 1e-3)

	// Additive over adjacent spans.
	require.InDelta(t, s.Doublings(2000, 2040), s.Doublings(2000, 2027)+s.Doublings(2027, 2040), 1e-12)
}

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Schedule
		wantErr error
	}{
		{"default", DefaultSchedule(), nil},
		{"flat", Schedule{Initial: 2}, nil},
		{"equal periods", Schedule{Initial: 2, Breakpoints: []Breakpoint{{2000, 2}, {2010, 2}}}, nil},
		{"zero initial", Schedule{Initial: 0}, ErrSchedulePeriod},
		{"negative breakpoint", Schedule{Initial: 2, Breakpoints: []Breakpoint{{2000, -1}}}, ErrSchedulePeriod},
		{"unordered", Schedule{Initial: 2, Breakpoints: []Breakpoint{{2010, 3}, {2000, 4}}}, ErrScheduleUnordered},
		{"duplicate year", Schedule{Initial: 2, Breakpoints: []Breakpoint{{2010, 3}, {2010, 4}}}, ErrScheduleUnordered},
		{"accelerating", Schedule{Initial: 2, Breakpoints: []Breakpoint{{2010, 3}, {2020, 2.5}}}, ErrScheduleDecreasing},
		{"faster than initial", Schedule{Initial: 2, Breakpoints: []Breakpoint{{2010, 1.5}}}, ErrScheduleDecreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
