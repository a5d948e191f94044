package types

// RiskLabel is the discrete classification of an overall risk score
type RiskLabel string

const (
	RiskLabelVeryLow  RiskLabel = "very_low"
	RiskLabelLow      RiskLabel = "low"
	RiskLabelModerate RiskLabel = "moderate"
	RiskLabelHigh     RiskLabel = "high"
	RiskLabelVeryHigh RiskLabel = "very_high"
)

// AllRiskLabels returns all valid risk labels from lowest to highest
func AllRiskLabels() []RiskLabel {
	return []RiskLabel{
		RiskLabelVeryLow,
		RiskLabelLow,
		RiskLabelModerate,
		RiskLabelHigh,
		RiskLabelVeryHigh,
	}
}

// LabelForScore maps an overall risk score to its label. Intervals are
// half-open with the lower bound inclusive: exactly 0.25 is "low",
// exactly 0.80 is "very_high".
func LabelForScore(overall float64) RiskLabel {
	switch {
	case overall < 0.25:
		return RiskLabelVeryLow
	case overall < 0.45:
		return RiskLabelLow
	case overall < 0.65:
		return RiskLabelModerate
	case overall < 0.80:
		return RiskLabelHigh
	default:
		return RiskLabelVeryHigh
	}
}

// IsValid checks if the risk label is valid
func (l RiskLabel) IsValid() bool {
	switch l {
	case RiskLabelVeryLow,
		RiskLabelLow,
		RiskLabelModerate,
		RiskLabelHigh,
		RiskLabelVeryHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk label
func (l RiskLabel) String() string {
	return string(l)
}
