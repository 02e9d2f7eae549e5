package matching

// ConfidenceLevel is the display band of a confidence score.
type ConfidenceLevel string

const (
	HIGH     ConfidenceLevel = "High Confidence"
	MODERATE ConfidenceLevel = "Moderate Confidence"
	LOW      ConfidenceLevel = "Low Confidence"
)

// Band thresholds, inclusive.
const (
	HighConfidenceThreshold     = 80
	ModerateConfidenceThreshold = 60
)

// LevelFor returns the display band for confidence.
func LevelFor(confidence int) ConfidenceLevel {
	switch {
	case confidence >= HighConfidenceThreshold:
		return HIGH
	case confidence >= ModerateConfidenceThreshold:
		return MODERATE
	default:
		return LOW
	}
}

// String returns the string representation of the level.
func (l ConfidenceLevel) String() string {
	return string(l)
}
