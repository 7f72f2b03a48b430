package policy

import "github.com/passaudit/passaudit/pkg/defaults"

// Level represents the qualitative strength bucket derived from a score.
// Values use their display form: the CLI and every writer print them as-is.
type Level string

const (
	// Weak covers scores below the medium threshold.
	Weak Level = "Weak"

	// Medium covers scores from the medium threshold up to, but not
	// including, the strong threshold.
	Medium Level = "Medium"

	// Strong covers scores at or above the strong threshold.
	Strong Level = "Strong"
)

// LevelForScore maps a numeric score to its Level bucket.
// Strong >= 5, Medium >= 3, Weak otherwise.
func LevelForScore(score int) Level {
	switch {
	case score >= defaults.StrongThreshold:
		return Strong
	case score >= defaults.MediumThreshold:
		return Medium
	default:
		return Weak
	}
}

// IsValid reports whether l is a recognized level.
func (l Level) IsValid() bool {
	switch l {
	case Weak, Medium, Strong:
		return true
	}
	return false
}

// Rank returns a numeric rank for sorting and comparison.
// Strong=3, Medium=2, Weak=1, Unknown=0.
func (l Level) Rank() int {
	switch l {
	case Strong:
		return 3
	case Medium:
		return 2
	case Weak:
		return 1
	default:
		return 0
	}
}

// String returns the level as a string.
func (l Level) String() string {
	return string(l)
}
