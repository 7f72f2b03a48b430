package defaults

import "testing"

// TestScoreThresholdOrdering verifies the level thresholds partition the
// score range without overlap.
func TestScoreThresholdOrdering(t *testing.T) {
	if StrongThreshold <= MediumThreshold {
		t.Errorf("StrongThreshold (%d) must be above MediumThreshold (%d)",
			StrongThreshold, MediumThreshold)
	}
	if StrongThreshold > MaxScore {
		t.Errorf("StrongThreshold (%d) exceeds MaxScore (%d)", StrongThreshold, MaxScore)
	}
	if MediumThreshold <= 0 {
		t.Errorf("MediumThreshold (%d) must be positive", MediumThreshold)
	}
}

// TestExitCodesDistinct verifies no two exit codes collide.
func TestExitCodesDistinct(t *testing.T) {
	codes := map[int]string{}
	for name, code := range map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitWeakPassword":  ExitWeakPassword,
		"ExitUserError":     ExitUserError,
		"ExitIOError":       ExitIOError,
		"ExitInternalError": ExitInternalError,
	} {
		if prev, dup := codes[code]; dup {
			t.Errorf("exit code %d used by both %s and %s", code, prev, name)
		}
		codes[code] = name
	}
}
