package services

import "time"

// CycleAlignment pins an abstract cycle to the calendar: AnchorIndex is the
// cycle position active on AnchorDate. The date-to-index mapping is a pure
// function of these three fields.
type CycleAlignment struct {
	Cycle       []ShiftLabel
	AnchorDate  time.Time
	AnchorIndex int
}

// RotaWindow bounds an alignment: StartDate inclusive, EndDate exclusive,
// nil EndDate means the rota runs indefinitely.
type RotaWindow struct {
	Alignment CycleAlignment
	StartDate time.Time
	EndDate   *time.Time
}

// ProjectedDay is one resolved calendar day. DayInCycle is 1-based; it is 0
// for days outside the window.
type ProjectedDay struct {
	Date       time.Time  `json:"date"`
	Label      ShiftLabel `json:"label"`
	DayInCycle int        `json:"day_in_cycle"`
}

// FloorMod is the non-negative remainder of a/n, needed because day offsets
// before the anchor date are negative and Go's % truncates toward zero.
func FloorMod(a int, n int) int {
	return ((a % n) + n) % n
}

// NewCycleAlignment normalizes an out-of-range anchor index by floored
// modulo. An empty cycle is a programming error and panics.
func NewCycleAlignment(cycle []ShiftLabel, anchorDate time.Time, anchorIndex int) CycleAlignment {
	if len(cycle) == 0 {
		panic("cycle alignment requires a non-empty cycle")
	}
	return CycleAlignment{
		Cycle:       cycle,
		AnchorDate:  anchorDate,
		AnchorIndex: FloorMod(anchorIndex, len(cycle)),
	}
}

// IndexAt maps a calendar date to its cycle position, for any date before or
// after the anchor.
func (alignment CycleAlignment) IndexAt(date time.Time) int {
	if len(alignment.Cycle) == 0 {
		panic("cycle alignment requires a non-empty cycle")
	}
	deltaDays := DaysBetween(alignment.AnchorDate, date)
	return FloorMod(alignment.AnchorIndex+deltaDays, len(alignment.Cycle))
}

// LabelAt returns the cycle label active on the given date.
func (alignment CycleAlignment) LabelAt(date time.Time) ShiftLabel {
	return alignment.Cycle[alignment.IndexAt(date)]
}

// LabelOn resolves a date within the window's bounds; dates outside
// [StartDate, EndDate) are off.
func (window RotaWindow) LabelOn(date time.Time) ShiftLabel {
	if !window.Contains(date) {
		return ShiftOff
	}
	return window.Alignment.LabelAt(date)
}

func (window RotaWindow) Contains(date time.Time) bool {
	if DaysBetween(window.StartDate, date) < 0 {
		return false
	}
	if window.EndDate != nil && DaysBetween(*window.EndDate, date) >= 0 {
		return false
	}
	return true
}

// ProjectRange resolves every date in [from, to] inclusive. An inverted
// range yields an empty slice, not an error. The result is total: every date
// appears exactly once, defaulting to off outside the window.
func ProjectRange(window RotaWindow, from time.Time, to time.Time, location *time.Location) []ProjectedDay {
	first := DateAtLocation(from, location)
	last := DateAtLocation(to, location)
	if last.Before(first) {
		return []ProjectedDay{}
	}

	days := make([]ProjectedDay, 0, DaysBetween(first, last)+1)
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		projected := ProjectedDay{Date: date, Label: ShiftOff}
		if window.Contains(date) {
			index := window.Alignment.IndexAt(date)
			projected.Label = window.Alignment.Cycle[index]
			projected.DayInCycle = index + 1
		}
		days = append(days, projected)
	}
	return days
}
