package services

// RecognizeCycle finds the shortest repeating cycle in a painted sequence of
// day labels. Candidate lengths run from 1 up to min(14, len/2); a candidate
// that is entirely off is skipped because it cannot be told apart from "no
// pattern". Returning ok=false is the normal no-pattern outcome, not an
// error.
func RecognizeCycle(sequence []ShiftLabel) ([]ShiftLabel, bool) {
	if len(sequence) < 2 {
		return nil, false
	}

	maxLength := len(sequence) / 2
	if maxLength > 14 {
		maxLength = 14
	}

	for cycleLength := 1; cycleLength <= maxLength; cycleLength++ {
		candidate := sequence[:cycleLength]
		if allOff(candidate) {
			continue
		}

		matches := true
		for i := cycleLength; i < len(sequence); i++ {
			if sequence[i] != candidate[i%cycleLength] {
				matches = false
				break
			}
		}
		if matches {
			cycle := make([]ShiftLabel, cycleLength)
			copy(cycle, candidate)
			return cycle, true
		}
	}

	return nil, false
}

func allOff(labels []ShiftLabel) bool {
	for _, label := range labels {
		if label.IsWorking() {
			return false
		}
	}
	return true
}
