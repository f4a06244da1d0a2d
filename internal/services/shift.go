package services

import "strings"

// ShiftLabel classifies a calendar day. Off is the only non-working variant.
type ShiftLabel string

const (
	ShiftDay       ShiftLabel = "day"
	ShiftNight     ShiftLabel = "night"
	ShiftMorning   ShiftLabel = "morning"
	ShiftAfternoon ShiftLabel = "afternoon"
	ShiftEvening   ShiftLabel = "evening"
	ShiftOff       ShiftLabel = "off"
	ShiftOther     ShiftLabel = "other"
)

// PatternKind summarizes the day/night mix of a cycle.
type PatternKind string

const (
	PatternRotating     PatternKind = "rotating"
	PatternMostlyDays   PatternKind = "mostly_days"
	PatternMostlyNights PatternKind = "mostly_nights"
	PatternCustom       PatternKind = "custom"
)

func (label ShiftLabel) IsWorking() bool {
	return label != ShiftOff
}

func (label ShiftLabel) Valid() bool {
	switch label {
	case ShiftDay, ShiftNight, ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftOff, ShiftOther:
		return true
	}
	return false
}

// ParseShiftLabel normalizes free-form input to a ShiftLabel. Unknown or
// empty input resolves to off rather than an error: an unlabeled day is a
// normal state.
func ParseShiftLabel(raw string) ShiftLabel {
	label := ShiftLabel(strings.ToLower(strings.TrimSpace(raw)))
	if label == "late" {
		return ShiftAfternoon
	}
	if label.Valid() {
		return label
	}
	return ShiftOff
}

// ClassifyStartHour buckets a shift by its starting clock hour:
// night 22-06, morning 06-10, day 10-14, evening 14-22.
func ClassifyStartHour(hour int) ShiftLabel {
	switch {
	case hour >= 22 || hour < 6:
		return ShiftNight
	case hour < 10:
		return ShiftMorning
	case hour < 14:
		return ShiftDay
	default:
		return ShiftEvening
	}
}

// InferPatternKind summarizes a cycle's working mix. A cycle mixing day-side
// and night shifts is rotating; otherwise a 70% majority of either side wins.
func InferPatternKind(cycle []ShiftLabel) PatternKind {
	working := 0
	dayside := 0
	nights := 0
	for _, label := range cycle {
		if !label.IsWorking() {
			continue
		}
		working++
		if label == ShiftNight {
			nights++
		} else {
			dayside++
		}
	}

	if working == 0 {
		return PatternCustom
	}
	if dayside > 0 && nights > 0 {
		return PatternRotating
	}
	if dayside > 0 && float64(dayside)/float64(working) >= 0.7 {
		return PatternMostlyDays
	}
	if nights > 0 && float64(nights)/float64(working) >= 0.7 {
		return PatternMostlyNights
	}
	return PatternCustom
}

// WorkingHours reports the default on-shift clock hours for a label,
// as a [start, end) pair that may cross midnight.
func WorkingHours(label ShiftLabel) (start int, end int, ok bool) {
	switch label {
	case ShiftMorning:
		return 6, 14, true
	case ShiftDay:
		return 9, 17, true
	case ShiftAfternoon, ShiftEvening:
		return 14, 22, true
	case ShiftNight:
		return 22, 6, true
	case ShiftOther:
		return 9, 17, true
	default:
		return 0, 0, false
	}
}

// HourWithinShift reports whether the clock hour falls inside the label's
// working window, handling midnight-crossing windows.
func HourWithinShift(hour int, label ShiftLabel) bool {
	start, end, ok := WorkingHours(label)
	if !ok {
		return false
	}
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
