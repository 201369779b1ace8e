package growth

// Grade classifies a future prediction from its distance to the base sample, its absolute
// target year and the limits its projection hit.
//
//	yearsFromBase > MaxReasonableYears      very_low  highly_speculative
//	targetYear > PracticalLimitYear + 10    low       speculative
//	targetYear > PracticalLimitYear         medium    uncertain
//	otherwise                               high      (none)
//
// A floored secondary metric overrides the warning with physical_limit_reached, and a capped
// primary metric overrides it with transistor_limit_reached. Limits never change the confidence.
func Grade(yearsFromBase, targetYear int, limits LimitFlags) (Confidence, Warning) {
	confidence, warning := ConfidenceHigh, WarningNone

	switch {
	case yearsFromBase > MaxReasonableYears:
		confidence, warning = ConfidenceVeryLow, WarningHighlySpeculative
	case targetYear > PracticalLimitYear+10:
		confidence, warning = ConfidenceLow, WarningSpeculative
	case targetYear > PracticalLimitYear:
		confidence, warning = ConfidenceMedium, WarningUncertain
	}

	if limits.ScaleFloored {
		warning = WarningPhysicalLimitReached
	}
	if limits.ValueCapped {
		warning = WarningTransistorLimitReached
	}

	return confidence, warning
}

// Note returns the explanatory text for a warning. Predictions without a warning get an empty note.
func Note(warning Warning) string {
	switch warning {
	case WarningPhysicalLimitReached:
		return "Physical limit: process scale cannot shrink further (atomic scale)"
	case WarningTransistorLimitReached:
		return "Practical limit: value capped at realistic maximum"
	case WarningHighlySpeculative:
		return "Highly speculative: requires breakthrough technologies"
	case WarningSpeculative:
		return "Speculative: assumes the doubling law continues beyond its expected end"
	case WarningUncertain:
		return "Uncertain: the doubling law is expected to slow significantly"
	default:
		return ""
	}
}
