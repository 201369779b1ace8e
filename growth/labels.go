package growth

// Mode selects how the extrapolator compounds growth between two years.
type Mode uint8

const (
	// ModeConstant compounds at the analyzer's fixed doubling period: base * 2^(years/period).
	ModeConstant Mode = iota
	// ModeTimeVarying steps year by year and looks up the doubling period for each year in the schedule.
	ModeTimeVarying
)

func (m Mode) String() string {
	switch m {
	case ModeConstant:
		return "constant"
	case ModeTimeVarying:
		return "time_varying"
	default:
		return "unknown"
	}
}

// Status classifies an observed value against its constant-mode prediction.
type Status string

const (
	StatusAhead   Status = "ahead"    // accuracy above 105%
	StatusBehind  Status = "behind"   // accuracy below 95%
	StatusOnTrack Status = "on_track" // accuracy within [95%, 105%]
)

func (s Status) String() string { return string(s) }

// statusForAccuracy maps an accuracy percentage to its Status.
func statusForAccuracy(accuracy float64) Status {
	switch {
	case accuracy > 105:
		return StatusAhead
	case accuracy < 95:
		return StatusBehind
	default:
		return StatusOnTrack
	}
}

// Adherence grades how closely an era's realized doubling period follows the classic two-year law.
type Adherence string

const (
	AdherenceStrong   Adherence = "strong"   // doubling period in [1.5, 2.5]
	AdherenceModerate Adherence = "moderate" // doubling period in [1.0, 3.5]
	AdherenceWeak     Adherence = "weak"
)

func (a Adherence) String() string { return string(a) }

func adherenceForPeriod(period float64) Adherence {
	switch {
	case period >= 1.5 && period <= 2.5:
		return AdherenceStrong
	case period >= 1.0 && period <= 3.5:
		return AdherenceModerate
	default:
		return AdherenceWeak
	}
}

// Confidence is the coarse trust grade attached to a future prediction.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceLow     Confidence = "low"
	ConfidenceVeryLow Confidence = "very_low"
)

func (c Confidence) String() string { return string(c) }

// Rank orders confidence grades from most (3) to least (0) trustworthy.
// Unknown grades rank below ConfidenceVeryLow.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	case ConfidenceVeryLow:
		return 0
	default:
		return -1
	}
}

// Warning explains why a future prediction should be treated with caution.
// The zero value WarningNone means the prediction carries no warning.
type Warning string

const (
	WarningNone                   Warning = ""
	WarningUncertain              Warning = "uncertain"
	WarningSpeculative            Warning = "speculative"
	WarningHighlySpeculative      Warning = "highly_speculative"
	WarningPhysicalLimitReached   Warning = "physical_limit_reached"
	WarningTransistorLimitReached Warning = "transistor_limit_reached"
)

func (w Warning) String() string { return string(w) }
